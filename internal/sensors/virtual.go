package sensors

import (
	"github.com/d6e/fanboi/internal/configuration"
)

// VirtualSensor is a sensor with a fixed value, in whole degrees.
type VirtualSensor struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	// Err is returned by GetValue instead of Value when set
	Err error `json:"-"`
}

func (sensor VirtualSensor) GetId() string {
	return sensor.Name
}

func (sensor VirtualSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{ID: sensor.Name}
}

func (sensor VirtualSensor) GetValue() (int, error) {
	if sensor.Err != nil {
		return 0, sensor.Err
	}
	return sensor.Value, nil
}

func (sensor *VirtualSensor) SetValue(value int) {
	sensor.Value = value
}
