package fan

import (
	"github.com/d6e/fanboi/cmd/global"
	"github.com/d6e/fanboi/internal/fans"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "fan",
	Short: "Fan related commands",
	Long:  ``,
}

func getFan() (fans.Fan, error) {
	config, err := global.LoadConfiguration()
	if err != nil {
		return nil, err
	}
	return fans.NewFan(config.Fan, config.Io, config.DryRun), nil
}
