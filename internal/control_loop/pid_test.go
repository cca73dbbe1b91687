package control_loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPidControlLoop_Cycle(t *testing.T) {
	// GIVEN
	loop := NewPidControlLoop(1.0, 0, 0, 100, 40, 10*time.Second)

	// WHEN
	output, duty := loop.Cycle(42)

	// THEN
	assert.InDelta(t, -2.0, output.Output, 0.0001)
	assert.Equal(t, 2, duty)
}

func TestPidControlLoop_Cycle_BelowTarget(t *testing.T) {
	loop := NewPidControlLoop(1.0, 0.7, 4.0, 100, 40, 10*time.Second)

	output, duty := loop.Cycle(30)

	assert.Greater(t, output.Output, 0.0)
	assert.Equal(t, 0, duty)
}

func TestPidControlLoop_Cycle_IntegralBuildsUp(t *testing.T) {
	// GIVEN
	loop := NewPidControlLoop(0, 1.0, 0, 100, 40, 10*time.Second)

	// WHEN
	_, first := loop.Cycle(45)
	_, second := loop.Cycle(45)
	_, third := loop.Cycle(45)

	// THEN
	assert.Equal(t, 5, first)
	assert.Equal(t, 10, second)
	assert.Equal(t, 15, third)
}
