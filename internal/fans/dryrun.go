package fans

import (
	"github.com/d6e/fanboi/internal/ui"
	"github.com/d6e/fanboi/internal/util"
)

// dryRunFan reads from the wrapped fan but never writes to it.
type dryRunFan struct {
	fan Fan
}

// NewDryRunFan wraps fan, so that SetPwm only reports the duty it would have written.
func NewDryRunFan(fan Fan) Fan {
	return &dryRunFan{fan: fan}
}

// IsDryRun reports whether writes to fan are discarded.
func IsDryRun(fan Fan) bool {
	_, ok := fan.(*dryRunFan)
	return ok
}

func (d *dryRunFan) GetId() string {
	return d.fan.GetId()
}

func (d *dryRunFan) GetPwm() (int, error) {
	return d.fan.GetPwm()
}

func (d *dryRunFan) SetPwm(duty int) error {
	duty = util.Coerce(duty, MinDuty, MaxDuty)
	ui.Info("setPWM=%d", duty)
	ui.Info("Dry run enabled. Avoiding writes.")
	return nil
}
