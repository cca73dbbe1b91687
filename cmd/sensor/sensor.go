package sensor

import (
	"strconv"

	"github.com/d6e/fanboi/cmd/global"
	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current value of every configured sensor",
	Long:  `Reads every configured sensor once and prints its raw value, its value in degrees and the hottest value.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := global.LoadConfiguration()
		if err != nil {
			return err
		}

		rows, hottest, err := readSensors(config)
		if err != nil {
			return err
		}
		if err := ui.PrintTable([]string{"Sensor", "Path", "Raw", "Value"}, rows, !global.NoColor); err != nil {
			return err
		}
		ui.Printfln("Max: %d", hottest)
		return nil
	},
}

// readSensors reads all sensors of config. Like the control loop, any failing sensor fails the whole read.
func readSensors(config configuration.Configuration) (rows [][]string, hottest int, err error) {
	var sensorList []sensors.Sensor
	for _, sensorConfig := range config.Sensors {
		sensor := &sensors.FileSensor{Config: sensorConfig, Io: config.Io}
		sensorList = append(sensorList, sensor)

		raw, err := sensor.GetRawValue()
		if err != nil {
			return nil, 0, err
		}
		rows = append(rows, []string{
			sensorConfig.ID,
			sensorConfig.Path,
			strconv.Itoa(raw),
			strconv.Itoa(sensors.MilliToDegrees(raw)),
		})
	}

	aggregator, err := sensors.NewAggregator(sensorList)
	if err != nil {
		return nil, 0, err
	}
	hottest, err = aggregator.Read()
	return rows, hottest, err
}
