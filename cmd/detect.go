package cmd

import (
	"path/filepath"
	"strconv"

	"github.com/d6e/fanboi/cmd/global"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/d6e/fanboi/internal/util"
	"github.com/spf13/cobra"
)

const notAvailable = "N/A"

var (
	thermalZonePatterns = []string{
		"/sys/class/thermal/thermal_zone*/temp",
	}
	pwmPatterns = []string{
		"/sys/class/hwmon/hwmon*/pwm[0-9]",
		"/sys/devices/pwm-fan/target_pwm",
	}
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Lists the thermal zones and pwm files of this machine that can be used as sensors and fan`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		zones, err := util.FindFilesMatching(thermalZonePatterns...)
		if err != nil {
			return err
		}
		pwms, err := util.FindFilesMatching(pwmPatterns...)
		if err != nil {
			return err
		}

		var sensorRows [][]string
		for _, path := range zones {
			label, err := util.ReadTextFromFile(filepath.Join(filepath.Dir(path), "type"))
			if err != nil {
				label = notAvailable
			}
			valueText := notAvailable
			if milli, err := util.ReadIntFromFile(path); err == nil {
				valueText = strconv.Itoa(sensors.MilliToDegrees(milli))
			}
			sensorRows = append(sensorRows, []string{path, label, valueText})
		}

		var fanRows [][]string
		for _, path := range pwms {
			valueText := notAvailable
			if value, err := util.ReadIntFromFile(path); err == nil {
				valueText = strconv.Itoa(value)
			}
			fanRows = append(fanRows, []string{path, valueText})
		}

		if len(sensorRows) <= 0 && len(fanRows) <= 0 {
			ui.Warning("No thermal zones or pwm files found")
			return nil
		}
		if len(sensorRows) > 0 {
			if err := ui.PrintTable([]string{"Sensors", "Type", "Value"}, sensorRows, !global.NoColor); err != nil {
				return err
			}
		}
		if len(fanRows) > 0 {
			if err := ui.PrintTable([]string{"Fans", "PWM"}, fanRows, !global.NoColor); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
