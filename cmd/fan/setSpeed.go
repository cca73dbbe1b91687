package fan

import (
	"fmt"
	"strconv"

	"github.com/d6e/fanboi/internal/fans"
	"github.com/spf13/cobra"
)

var setSpeedCmd = &cobra.Command{
	Use:   "set <duty>",
	Short: "Set the duty of the fan to the given value ([0..100])",
	Long:  `Writes the given duty to the fan once. The control loop is not involved, so no minimum duty applies.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duty, err := parseDuty(args[0])
		if err != nil {
			return err
		}

		fan, err := getFan()
		if err != nil {
			return err
		}
		return fan.SetPwm(duty)
	},
}

func parseDuty(text string) (int, error) {
	duty, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid duty %q: %w", text, err)
	}
	if duty < fans.MinDuty || duty > fans.MaxDuty {
		return 0, fmt.Errorf("duty must be in [%d..%d], was %d", fans.MinDuty, fans.MaxDuty, duty)
	}
	return duty, nil
}

func init() {
	Command.AddCommand(setSpeedCmd)
}
