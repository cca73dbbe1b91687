package control_loop

import "github.com/d6e/fanboi/internal/util"

type ControlLoop interface {
	// Cycle advances the control loop with a new measurement and returns
	// the raw controller output together with the duty derived from it
	Cycle(measured float64) (util.PidOutput, int)
}

type ActuationPolicy interface {
	// Decide returns the duty to write and whether it should be written at all
	Decide(newDuty int, running bool) (int, bool)
}
