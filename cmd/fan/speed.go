package fan

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Print the current duty of the fan ([0..100])",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan()
		if err != nil {
			return err
		}

		pwm, err := fan.GetPwm()
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", pwm)
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
