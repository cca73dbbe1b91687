package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/d6e/fanboi/internal/api"
	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/control_loop"
	"github.com/d6e/fanboi/internal/controller"
	"github.com/d6e/fanboi/internal/fans"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/d6e/fanboi/internal/statistics"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/oklog/run"
)

// Objects are the components of a running daemon, wired together.
type Objects struct {
	Aggregator *sensors.Aggregator
	Fan        fans.Fan
	Controller controller.FanController
}

// RunDaemon runs the control loop until it fails or the process receives SIGINT/SIGTERM.
func RunDaemon(config configuration.Configuration) error {
	objects, err := InitializeObjects(config)
	if err != nil {
		return err
	}

	statistics.Register(statistics.NewControllerCollector([]controller.FanController{objects.Controller}))
	statistics.Register(statistics.NewSensorCollector(objects.Aggregator))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		// === fan controller
		g.Add(func() error {
			err := objects.Controller.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", objects.Fan.GetId())
			return err
		}, func(err error) {
			cancel()
		})
	}
	if config.Api.Enabled {
		// === status api
		rest := api.CreateRestService(objects.Controller, objects.Aggregator)
		g.Add(func() error {
			addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)
			go func() {
				ui.Info("Starting status api on %s", addr)
				if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					ui.Error("Cannot start status api (%s)", err.Error())
				}
			}()

			<-ctx.Done()
			ui.Info("Stopping status api...")
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer timeoutCancel()
			return rest.Shutdown(timeoutCtx)
		}, func(err error) {
			cancel()
			if err != nil {
				ui.Warning("Error stopping status api: %v", err)
			}
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	err = g.Run()
	if err == nil {
		ui.Info("Done.")
	}
	return err
}

// InitializeObjects creates the sensors, the fan and the controller driving it.
func InitializeObjects(config configuration.Configuration) (*Objects, error) {
	var sensorList []sensors.Sensor
	for _, sensorConfig := range config.Sensors {
		sensorList = append(sensorList, sensors.NewSensor(sensorConfig, config.Io))
	}
	aggregator, err := sensors.NewAggregator(sensorList)
	if err != nil {
		return nil, err
	}

	fan := fans.NewFan(config.Fan, config.Io, config.DryRun)
	if config.DryRun {
		ui.Warning("Dry run enabled, the fan will not be written to")
	}

	pidLoop := control_loop.NewPidControlLoop(
		config.Pid.P,
		config.Pid.I,
		config.Pid.D,
		config.Pid.Limit,
		config.TargetTemperature,
		config.PollInterval,
	)
	ui.Info("PID initialized with p=%v i=%v d=%v target_temp=%v", config.Pid.P, config.Pid.I, config.Pid.D, config.TargetTemperature)

	fanController := controller.NewFanController(
		aggregator,
		pidLoop,
		control_loop.NewHysteresisPolicy(config.MinimumDuty),
		fan,
		config.PollInterval,
	)

	return &Objects{
		Aggregator: aggregator,
		Fan:        fan,
		Controller: fanController,
	}, nil
}
