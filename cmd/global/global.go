package global

import (
	"fmt"
	"strings"

	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/ui"
)

var (
	CfgFile string
	Verbose int
	NoColor bool
	NoStyle bool
	// Sensors given on the command line, replacing the configured ones
	Sensors []string
)

// LoadConfiguration reads the config file, applies command line overrides and validates the result.
func LoadConfiguration() (configuration.Configuration, error) {
	configPath, err := configuration.ReadConfigFile(CfgFile != "")
	if err != nil {
		return configuration.Configuration{}, err
	}
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	} else {
		ui.Info("No configuration file found, using defaults")
	}

	config, err := configuration.LoadConfig()
	if err != nil {
		return config, err
	}

	if len(Sensors) > 0 {
		config.Sensors, err = ParseSensorFlags(Sensors)
		if err != nil {
			return config, err
		}
	}
	config.Verbosity = max(config.Verbosity, Verbose)
	ui.SetDebugEnabled(config.Verbosity >= 1)

	if err := configuration.Validate(config); err != nil {
		return config, fmt.Errorf("config validation error: %w", err)
	}
	return config, nil
}

// ParseSensorFlags parses "id=path" values. Values without an id are named sensor1, sensor2, ...
func ParseSensorFlags(values []string) ([]configuration.SensorConfig, error) {
	var result []configuration.SensorConfig
	for idx, value := range values {
		id, path, found := strings.Cut(value, "=")
		if !found {
			id, path = fmt.Sprintf("sensor%d", idx+1), value
		}
		id = strings.TrimSpace(id)
		path = strings.TrimSpace(path)
		if len(id) <= 0 || len(path) <= 0 {
			return nil, fmt.Errorf("invalid sensor %q, expected id=path", value)
		}
		result = append(result, configuration.SensorConfig{ID: id, Path: path})
	}
	return result, nil
}
