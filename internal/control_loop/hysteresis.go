package control_loop

import "github.com/d6e/fanboi/internal/fans"

// HysteresisPolicy models the stiction of a real fan: a stopped fan does not
// start at low duty values, so those are only written while it is already spinning.
type HysteresisPolicy struct {
	// MinimumDuty is the duty a stopped fan has to exceed to be started
	MinimumDuty int
}

func NewHysteresisPolicy(minimumDuty int) HysteresisPolicy {
	return HysteresisPolicy{MinimumDuty: minimumDuty}
}

// Decide writes newDuty if the fan is running, if newDuty is high enough to
// start the fan, or if newDuty stops the fan. Everything else is suppressed.
func (p HysteresisPolicy) Decide(newDuty int, running bool) (int, bool) {
	if newDuty == fans.MinDuty {
		return newDuty, true
	}
	if running || newDuty > p.MinimumDuty {
		return newDuty, true
	}
	return fans.MinDuty, false
}
