package config

import (
	"fmt"

	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/d6e/fanboi/internal/util"
	"github.com/spf13/cobra"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Writes a config file with the default values",
	Long:  `Writes a config file with the default values to the given path (default ./fanboi.toml)`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configuration.ConfigName + ".toml"
		if len(args) > 0 {
			path = args[0]
		}
		return writeDefaultConfig(path, force)
	},
}

func writeDefaultConfig(path string, overwrite bool) error {
	path, err := util.ExpandPath(path)
	if err != nil {
		return err
	}
	if util.FileExists(path) && !overwrite {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}

	data, err := configuration.DefaultConfigFile()
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("unable to write config file %s: %w", path, err)
	}
	ui.Success("Config written to %s", path)
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	Command.AddCommand(initCmd)
}
