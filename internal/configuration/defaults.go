package configuration

import (
	"github.com/pelletier/go-toml/v2"
)

type defaultFile struct {
	TargetTemperature float64             `toml:"targetTemperature"`
	PollInterval      int                 `toml:"pollInterval"`
	MinimumDuty       int                 `toml:"minimumDuty"`
	DryRun            bool                `toml:"dryRun"`
	Pid               defaultPidSection   `toml:"pid"`
	Fan               defaultFanSection   `toml:"fan"`
	Io                defaultIoSection    `toml:"io"`
	Api               defaultApiSection   `toml:"api"`
	Sensors           []defaultSensorItem `toml:"sensors"`
}

type defaultPidSection struct {
	P     float64 `toml:"p"`
	I     float64 `toml:"i"`
	D     float64 `toml:"d"`
	Limit float64 `toml:"limit"`
}

type defaultSensorItem struct {
	ID   string `toml:"id"`
	Path string `toml:"path"`
}

type defaultFanSection struct {
	Path     string `toml:"path"`
	MaxValue int    `toml:"maxValue"`
}

type defaultIoSection struct {
	Retries    int    `toml:"retries"`
	RetryDelay string `toml:"retryDelay"`
}

type defaultApiSection struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
}

// DefaultConfigFile renders a config file containing all default values as TOML.
func DefaultConfigFile() ([]byte, error) {
	file := defaultFile{
		TargetTemperature: DefaultTargetTemperature,
		PollInterval:      int(DefaultPollInterval.Seconds()),
		MinimumDuty:       DefaultMinimumDuty,
		Pid: defaultPidSection{
			P:     DefaultP,
			I:     DefaultI,
			D:     DefaultD,
			Limit: DefaultPidLimit,
		},
		Fan: defaultFanSection{
			Path:     DefaultFanPath,
			MaxValue: DefaultFanMaxValue,
		},
		Io: defaultIoSection{
			Retries:    0,
			RetryDelay: "1s",
		},
		Api: defaultApiSection{
			Host: DefaultApiHost,
			Port: DefaultApiPort,
		},
	}
	for _, sensor := range DefaultSensors {
		file.Sensors = append(file.Sensors, defaultSensorItem{ID: sensor.ID, Path: sensor.Path})
	}
	return toml.Marshal(file)
}
