package configuration

import (
	"errors"
	"fmt"
	"time"
)

// duty is always expressed in percent, independent of the native range of the fan
const (
	minDuty = 0
	maxDuty = 100
)

// Validate checks the given configuration for values the control loop cannot work with.
func Validate(config Configuration) error {
	err := validatePid(config)
	if err != nil {
		return err
	}
	err = validateSensors(config)
	if err != nil {
		return err
	}
	err = validateFan(config)
	if err != nil {
		return err
	}
	err = validateLoop(config)
	if err != nil {
		return err
	}
	return validateApi(config)
}

func validatePid(config Configuration) error {
	if config.Pid.Limit <= 0 {
		return fmt.Errorf("pid: limit must be > 0, was %v", config.Pid.Limit)
	}
	return nil
}

func validateSensors(config Configuration) error {
	if len(config.Sensors) <= 0 {
		return errors.New("at least one sensor is required")
	}

	ids := map[string]bool{}
	paths := map[string]bool{}
	for idx, sensorConfig := range config.Sensors {
		if len(sensorConfig.ID) <= 0 {
			return fmt.Errorf("sensor #%d: id is missing", idx+1)
		}
		if ids[sensorConfig.ID] {
			return fmt.Errorf("sensor %s: duplicate id", sensorConfig.ID)
		}
		ids[sensorConfig.ID] = true

		if len(sensorConfig.Path) <= 0 {
			return fmt.Errorf("sensor %s: path is missing", sensorConfig.ID)
		}
		if paths[sensorConfig.Path] {
			return fmt.Errorf("sensor %s: path %s is used by another sensor", sensorConfig.ID, sensorConfig.Path)
		}
		paths[sensorConfig.Path] = true
	}

	return nil
}

func validateFan(config Configuration) error {
	if len(config.Fan.Path) <= 0 {
		return errors.New("fan: path is missing")
	}
	if config.Fan.MaxValue <= 0 {
		return fmt.Errorf("fan: maxValue must be > 0, was %d", config.Fan.MaxValue)
	}
	return nil
}

func validateLoop(config Configuration) error {
	if config.PollInterval < time.Second {
		return fmt.Errorf("pollInterval must be at least 1s, was %s", config.PollInterval)
	}
	if config.PollInterval%time.Second != 0 {
		return fmt.Errorf("pollInterval must be a whole number of seconds, was %s", config.PollInterval)
	}
	if config.MinimumDuty < minDuty || config.MinimumDuty > maxDuty {
		return fmt.Errorf("minimumDuty must be in [%d..%d], was %d", minDuty, maxDuty, config.MinimumDuty)
	}
	if config.Io.Retries < 0 {
		return fmt.Errorf("io: retries must be >= 0, was %d", config.Io.Retries)
	}
	if config.Io.RetryDelay < 0 {
		return fmt.Errorf("io: retryDelay must be >= 0, was %s", config.Io.RetryDelay)
	}
	return nil
}

func validateApi(config Configuration) error {
	if !config.Api.Enabled {
		return nil
	}
	if config.Api.Port <= 0 || config.Api.Port >= 65535 {
		return fmt.Errorf("api: invalid port %d", config.Api.Port)
	}
	return nil
}
