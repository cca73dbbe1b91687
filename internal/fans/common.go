package fans

import (
	"github.com/d6e/fanboi/internal/configuration"
)

// Duty values are always in percent. Fans with a different native range scale internally.
const (
	MinDuty = 0
	MaxDuty = 100
)

const DefaultFanId = "fan"

// Fan is the actuator driven by the control loop.
type Fan interface {
	GetId() string

	// GetPwm returns the last duty commanded to the fan
	GetPwm() (int, error)
	// SetPwm commands the given duty to the fan
	SetPwm(duty int) error
}

// NewFan creates the fan described by config. In dry run mode the returned fan never writes.
func NewFan(config configuration.FanConfig, io configuration.IoConfig, dryRun bool) Fan {
	var fan Fan = &FileFan{
		ID:     DefaultFanId,
		Config: config,
		Io:     io,
	}
	if dryRun {
		fan = NewDryRunFan(fan)
	}
	return fan
}

// IsRunning reports whether the last duty commanded to fan is non-zero.
func IsRunning(fan Fan) (bool, error) {
	pwm, err := fan.GetPwm()
	if err != nil {
		return false, err
	}
	return pwm != MinDuty, nil
}
