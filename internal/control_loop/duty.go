package control_loop

import (
	"github.com/d6e/fanboi/internal/fans"
	"github.com/d6e/fanboi/internal/util"
)

// InvertOutput turns the output of the controller into a cooling demand.
// The controller output is negative when the measurement is above the set point,
// while the fan has to spin faster the hotter it gets.
func InvertOutput(output float64) float64 {
	return -1.0 * output
}

// ToDuty rounds a cooling demand up to a whole duty value.
// Negative demands result in 0, since a fan can't run backwards.
func ToDuty(demand float64) int {
	if demand <= 0 {
		return fans.MinDuty
	}
	return util.Coerce(util.CeilToInt(demand), fans.MinDuty, fans.MaxDuty)
}

// MapDuty converts a raw controller output to the duty of the fan.
func MapDuty(output float64) int {
	return ToDuty(InvertOutput(output))
}
