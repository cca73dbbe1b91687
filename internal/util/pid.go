package util

import "time"

// PidOutput is the result of a single PidLoop step, split into its clamped terms.
type PidOutput struct {
	P float64 `json:"p"`
	I float64 `json:"i"`
	D float64 `json:"d"`
	// Output is the clamped sum of P, I and D
	Output float64 `json:"output"`
}

type pidState struct {
	// integral term, already scaled by the integral gain and clamped
	integralTerm float64
	// error of the previous step
	lastError float64
	// false until the first step was committed
	initialized bool
}

// PidLoop is a discrete PID controller, evaluated once per sample period.
//
// error = setPoint - measured, so a measurement above the set point yields a negative output.
// Each term is clamped to its own limit, the sum is clamped to the output limit.
// Not safe for concurrent use.
type PidLoop struct {
	// Proportional Constant
	p float64
	// Integral Constant
	i float64
	// Derivative Constant
	d float64

	pLimit   float64
	iLimit   float64
	dLimit   float64
	outLimit float64

	setPoint float64
	// sample period in seconds, only the derivative is scaled by it
	dt float64

	state pidState
}

// NewPidLoop creates a PidLoop with every term limit and the output limit set to ±limit.
func NewPidLoop(p, i, d, limit, setPoint float64, samplePeriod time.Duration) *PidLoop {
	return &PidLoop{
		p:        p,
		i:        i,
		d:        d,
		pLimit:   limit,
		iLimit:   limit,
		dLimit:   limit,
		outLimit: limit,
		setPoint: setPoint,
		dt:       samplePeriod.Seconds(),
	}
}

// SetTermLimits sets the symmetric limits of the individual terms.
func (l *PidLoop) SetTermLimits(p, i, d float64) {
	l.pLimit = p
	l.iLimit = i
	l.dLimit = d
}

func (l *PidLoop) SetPoint() float64 {
	return l.setPoint
}

// Loop advances the pid loop by one sample period and returns its output.
func (l *PidLoop) Loop(measured float64) PidOutput {
	output, next := l.step(measured)
	l.state = next
	return output
}

// Peek returns the output Loop would return for measured, without advancing the loop.
func (l *PidLoop) Peek(measured float64) PidOutput {
	output, _ := l.step(measured)
	return output
}

func (l *PidLoop) step(measured float64) (PidOutput, pidState) {
	err := l.setPoint - measured

	pTerm := Coerce(l.p*err, -l.pLimit, l.pLimit)

	// the integral grows by i*err once per step, independent of the sample period,
	// and saturates at the limit, so it never winds up beyond it
	iTerm := Coerce(l.state.integralTerm+l.i*err, -l.iLimit, l.iLimit)

	dTerm := 0.0
	if l.state.initialized && l.dt > 0 {
		dTerm = Coerce(l.d*(err-l.state.lastError)/l.dt, -l.dLimit, l.dLimit)
	}

	output := PidOutput{
		P:      pTerm,
		I:      iTerm,
		D:      dTerm,
		Output: Coerce(pTerm+iTerm+dTerm, -l.outLimit, l.outLimit),
	}
	next := pidState{
		integralTerm: iTerm,
		lastError:    err,
		initialized:  true,
	}
	return output, next
}
