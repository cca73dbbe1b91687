package cmd

import (
	"fmt"
	"strconv"

	"github.com/d6e/fanboi/cmd/global"
	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/control_loop"
	"github.com/d6e/fanboi/internal/controller"
	"github.com/d6e/fanboi/internal/fans"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	simulateFrom    int
	simulateTo      int
	simulateSteps   int
	simulateRunning bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate the controller over a temperature ramp",
	Long: `Feeds a linear temperature ramp into the controller, using the configured
gains and minimum duty, and prints the resulting fan duty of each tick.
No sensor or fan is accessed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		config, err := global.LoadConfiguration()
		if err != nil {
			return err
		}

		initialPwm := fans.MinDuty
		if simulateRunning {
			initialPwm = fans.MaxDuty
		}
		results, err := simulate(config, simulateFrom, simulateTo, simulateSteps, initialPwm)
		if err != nil {
			return err
		}

		var rows [][]string
		var duties []float64
		for idx, result := range results {
			rows = append(rows, []string{
				strconv.Itoa(idx),
				strconv.Itoa(result.Temperature),
				fmt.Sprintf("%.2f", result.Output.P),
				fmt.Sprintf("%.2f", result.Output.I),
				fmt.Sprintf("%.2f", result.Output.D),
				fmt.Sprintf("%.2f", result.Output.Output),
				strconv.Itoa(result.Duty),
				strconv.FormatBool(result.Running),
				strconv.FormatBool(result.Written),
			})
			duties = append(duties, float64(result.Duty))
		}

		headers := []string{"Tick", "Temp", "P", "I", "D", "Output", "Duty", "Running", "Written"}
		if err := ui.PrintTable(headers, rows, !global.NoColor); err != nil {
			return err
		}

		graph := asciigraph.Plot(duties,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("duty, %d°C -> %d°C", simulateFrom, simulateTo)),
		)
		ui.Printfln("%s", graph)
		return nil
	},
}

// simulate ticks a controller with a virtual sensor following a linear ramp from -> to and a virtual fan.
func simulate(config configuration.Configuration, from int, to int, steps int, initialPwm int) ([]controller.TickResult, error) {
	if steps < 2 {
		return nil, fmt.Errorf("steps must be at least 2, was %d", steps)
	}

	sensor := &sensors.VirtualSensor{Name: "simulated", Value: from}
	aggregator, err := sensors.NewAggregator([]sensors.Sensor{sensor})
	if err != nil {
		return nil, err
	}

	fanController := controller.NewFanController(
		aggregator,
		control_loop.NewPidControlLoop(
			config.Pid.P,
			config.Pid.I,
			config.Pid.D,
			config.Pid.Limit,
			config.TargetTemperature,
			config.PollInterval,
		),
		control_loop.NewHysteresisPolicy(config.MinimumDuty),
		fans.NewVirtualFan(fans.DefaultFanId, initialPwm),
		config.PollInterval,
	)

	var results []controller.TickResult
	for step := 0; step < steps; step++ {
		sensor.SetValue(from + (to-from)*step/(steps-1))
		result, err := fanController.Tick()
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func init() {
	simulateCmd.Flags().IntVar(&simulateFrom, "from", 30, "Temperature of the first tick")
	simulateCmd.Flags().IntVar(&simulateTo, "to", 90, "Temperature of the last tick")
	simulateCmd.Flags().IntVar(&simulateSteps, "steps", 20, "Number of ticks")
	simulateCmd.Flags().BoolVar(&simulateRunning, "running", false, "Start with a running fan")

	rootCmd.AddCommand(simulateCmd)
}
