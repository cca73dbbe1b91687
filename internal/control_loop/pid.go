package control_loop

import (
	"time"

	"github.com/d6e/fanboi/internal/ui"
	"github.com/d6e/fanboi/internal/util"
)

// PidControlLoop feeds temperatures into a PidLoop and maps its output to a fan duty.
type PidControlLoop struct {
	pidLoop *util.PidLoop
}

// NewPidControlLoop creates a PidControlLoop approaching the given target temperature.
func NewPidControlLoop(
	p float64,
	i float64,
	d float64,
	limit float64,
	target float64,
	samplePeriod time.Duration,
) *PidControlLoop {
	return &PidControlLoop{
		pidLoop: util.NewPidLoop(p, i, d, limit, target, samplePeriod),
	}
}

func (l *PidControlLoop) Cycle(measured float64) (util.PidOutput, int) {
	output := l.pidLoop.Loop(measured)
	duty := MapDuty(output.Output)

	ui.Debug("PidControlLoop: target: %.2f, measured: %.2f, p: %.4f, i: %.4f, d: %.4f, output: %.4f, duty: %d",
		l.pidLoop.SetPoint(), measured, output.P, output.I, output.D, output.Output, duty)

	return output, duty
}
