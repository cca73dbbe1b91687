package fans

import (
	"fmt"

	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/d6e/fanboi/internal/util"
)

// FileFan is a fan controlled through a single text file, like a sysfs pwm attribute.
// Reading the file yields the last written value, writing it commands a new one.
type FileFan struct {
	ID     string                  `json:"id"`
	Config configuration.FanConfig `json:"config"`
	Io     configuration.IoConfig  `json:"io"`
}

func (fan FileFan) GetId() string {
	return fan.ID
}

func (fan FileFan) GetPwm() (result int, err error) {
	filePath, err := util.ExpandPath(fan.Config.Path)
	if err != nil {
		return MinDuty, err
	}

	ui.Debug("Reading file=%s", filePath)
	var value int
	err = util.Retry(fan.Io.Retries, fan.Io.RetryDelay, func() error {
		value, err = util.ReadIntFromFile(filePath)
		return err
	})
	if err != nil {
		return MinDuty, fmt.Errorf("fan %s: unable to read pwm: %w", fan.ID, err)
	}
	if value < 0 {
		return MinDuty, fmt.Errorf("fan %s: invalid pwm value %d in %s", fan.ID, value, filePath)
	}

	return fan.toDuty(value), nil
}

func (fan *FileFan) SetPwm(duty int) (err error) {
	duty = util.Coerce(duty, MinDuty, MaxDuty)
	ui.Info("setPWM=%d", duty)

	filePath, err := util.ExpandPath(fan.Config.Path)
	if err != nil {
		return err
	}

	value := fan.toNative(duty)
	ui.Debug("Writing file=%s value=%d", filePath, value)
	err = util.Retry(fan.Io.Retries, fan.Io.RetryDelay, func() error {
		return util.WriteIntToFileSynced(value, filePath)
	})
	if err != nil {
		return fmt.Errorf("fan %s: unable to write pwm %d: %w", fan.ID, value, err)
	}
	return nil
}

func (fan FileFan) maxValue() int {
	if fan.Config.MaxValue <= 0 {
		return MaxDuty
	}
	return fan.Config.MaxValue
}

// toNative scales a duty to the native range of the fan, rounding up
func (fan FileFan) toNative(duty int) int {
	maxValue := fan.maxValue()
	if maxValue == MaxDuty {
		return duty
	}
	return util.CeilToInt(float64(duty) * float64(maxValue) / MaxDuty)
}

// toDuty scales a native value to a duty, rounding up so any non-zero value stays non-zero
func (fan FileFan) toDuty(value int) int {
	maxValue := fan.maxValue()
	if maxValue == MaxDuty {
		return value
	}
	return util.Coerce(util.CeilToInt(float64(value)*MaxDuty/float64(maxValue)), MinDuty, MaxDuty)
}
