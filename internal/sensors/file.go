package sensors

import (
	"fmt"

	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/d6e/fanboi/internal/util"
)

// FileSensor reads a temperature in milli-degrees from a text file, like a thermal zone.
type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
	Io     configuration.IoConfig     `json:"io"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor FileSensor) GetValue() (int, error) {
	milli, err := sensor.GetRawValue()
	if err != nil {
		return 0, err
	}
	return MilliToDegrees(milli), nil
}

// GetRawValue returns the unconverted milli-degree value of the sensor file.
func (sensor FileSensor) GetRawValue() (int, error) {
	filePath, err := util.ExpandPath(sensor.Config.Path)
	if err != nil {
		return 0, err
	}

	ui.Debug("Reading file=%s", filePath)
	var milli int
	err = util.Retry(sensor.Io.Retries, sensor.Io.RetryDelay, func() error {
		milli, err = util.ReadIntFromFile(filePath)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.Config.ID, err)
	}
	return milli, nil
}
