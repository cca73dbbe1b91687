package config

import (
	"github.com/d6e/fanboi/cmd/global"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		config, err := global.LoadConfiguration()
		if err != nil {
			ui.Error("Validation failed: %v", err)
			return err
		}

		for _, sensor := range config.Sensors {
			ui.Info("Sensor %s: %s", sensor.ID, sensor.Path)
		}
		ui.Info("Fan: %s", config.Fan.Path)
		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
