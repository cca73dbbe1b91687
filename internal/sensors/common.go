package sensors

import (
	"github.com/d6e/fanboi/internal/configuration"
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current temperature of this sensor in whole degrees
	GetValue() (int, error)
}

func NewSensor(config configuration.SensorConfig, io configuration.IoConfig) Sensor {
	return &FileSensor{
		Config: config,
		Io:     io,
	}
}

// MilliToDegrees converts milli-degrees to whole degrees, truncating toward zero.
func MilliToDegrees(milli int) int {
	return milli / 1000
}
