package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/d6e/fanboi/internal/control_loop"
	"github.com/d6e/fanboi/internal/fans"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/d6e/fanboi/internal/util"
)

type FanController interface {
	// Run ticks until ctx is done or a tick fails
	Run(ctx context.Context) error
	// Tick runs a single sample, compute, map, decide and act iteration
	Tick() (TickResult, error)

	GetFanId() string
	GetStatistics() Statistics
}

// TickResult describes what happened during a single tick.
type TickResult struct {
	// Temperature is the hottest sensor reading, in whole degrees
	Temperature int `json:"temperature"`
	// Output is the raw output of the controller
	Output util.PidOutput `json:"output"`
	// Duty is the duty derived from Output
	Duty int `json:"duty"`
	// Running is true if the fan was commanded a non-zero duty before this tick
	Running bool `json:"running"`
	// Written is true if Duty was written to the fan
	Written bool `json:"written"`
}

type Statistics struct {
	LastTick        TickResult `json:"lastTick"`
	LastTickTime    time.Time  `json:"lastTickTime"`
	TickCount       int        `json:"tickCount"`
	WriteCount      int        `json:"writeCount"`
	SuppressedCount int        `json:"suppressedCount"`
}

type fanController struct {
	aggregator   *sensors.Aggregator
	controlLoop  control_loop.ControlLoop
	policy       control_loop.ActuationPolicy
	fan          fans.Fan
	pollInterval time.Duration

	mu    sync.RWMutex
	stats Statistics
}

func NewFanController(
	aggregator *sensors.Aggregator,
	controlLoop control_loop.ControlLoop,
	policy control_loop.ActuationPolicy,
	fan fans.Fan,
	pollInterval time.Duration,
) FanController {
	return &fanController{
		aggregator:   aggregator,
		controlLoop:  controlLoop,
		policy:       policy,
		fan:          fan,
		pollInterval: pollInterval,
	}
}

func (f *fanController) GetFanId() string {
	return f.fan.GetId()
}

func (f *fanController) Run(ctx context.Context) error {
	ui.Info("Starting controller loop for fan '%s'", f.fan.GetId())

	for {
		_, err := f.Tick()
		if err != nil {
			ui.Error("Error in FanController for fan %s: %v", f.fan.GetId(), err)
			f.tryFullSpeed()
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.pollInterval):
		}
	}
}

func (f *fanController) Tick() (result TickResult, err error) {
	temperature, err := f.aggregator.Read()
	if err != nil {
		return result, fmt.Errorf("unable to read temperature: %w", err)
	}
	result.Temperature = temperature

	result.Output, result.Duty = f.controlLoop.Cycle(float64(temperature))

	result.Running, err = fans.IsRunning(f.fan)
	if err != nil {
		return result, err
	}

	duty, write := f.policy.Decide(result.Duty, result.Running)
	ui.Debug("temp=%d output=%.2f duty=%d running=%t written=%t", temperature, result.Output.Output, result.Duty, result.Running, write)
	if write {
		err = f.fan.SetPwm(duty)
		if err != nil {
			return result, err
		}
		result.Written = true
	}

	f.updateStatistics(result)
	return result, nil
}

func (f *fanController) GetStatistics() Statistics {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.stats
}

func (f *fanController) updateStatistics(result TickResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats.LastTick = result
	f.stats.LastTickTime = time.Now()
	f.stats.TickCount++
	if result.Written {
		f.stats.WriteCount++
	} else {
		f.stats.SuppressedCount++
	}
}

// tryFullSpeed leaves the fan spinning at full speed when the loop gives up on it
func (f *fanController) tryFullSpeed() {
	if fans.IsDryRun(f.fan) {
		ui.Warning("Dry run enabled, not setting fan %s to full speed", f.fan.GetId())
		return
	}
	ui.Info("Trying to set fan %s to full speed...", f.fan.GetId())
	err := f.fan.SetPwm(fans.MaxDuty)
	if err != nil {
		ui.Warning("Unable to set fan %s to full speed, make sure it is running!", f.fan.GetId())
	}
}
