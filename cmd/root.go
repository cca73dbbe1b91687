package cmd

import (
	"fmt"
	"os"

	"github.com/d6e/fanboi/cmd/config"
	"github.com/d6e/fanboi/cmd/fan"
	"github.com/d6e/fanboi/cmd/global"
	"github.com/d6e/fanboi/cmd/sensor"
	"github.com/d6e/fanboi/internal"
	"github.com/d6e/fanboi/internal/configuration"
	"github.com/d6e/fanboi/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fanboi",
	Short: "Fanboi - A fan PID controller",
	Long: `fanboi is a small daemon that keeps a fan at the speed
needed to hold the hottest of a set of temperature sensors at a target.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// this is the default command to run when no subcommand is specified
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()
		printHeader()

		config, err := global.LoadConfiguration()
		if err != nil {
			return err
		}

		ui.Info("Starting PID fan controller...")
		return internal.RunDaemon(config)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&global.CfgFile, "config", "c", "", "config file (default is fanboi.toml in ., $HOME or /etc/fanboi/)")
	flags.BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	flags.BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	flags.CountVarP(&global.Verbose, "verbose", "v", "Sets the level of verbosity")
	flags.StringArrayVar(&global.Sensors, "sensor", nil, "Temperature source as id=path, repeatable (replaces the configured sensors)")

	flags.Float64P("pvalue", "p", configuration.DefaultP, "Sets the P gain value of the PID controller")
	flags.Float64P("ivalue", "i", configuration.DefaultI, "Sets the I gain value of the PID controller")
	flags.Float64P("dvalue", "d", configuration.DefaultD, "Sets the D gain value of the PID controller")
	flags.Float64P("target-temp", "t", configuration.DefaultTargetTemperature, "Target temperature in °C")
	flags.Int("poll-interval", int(configuration.DefaultPollInterval.Seconds()), "Seconds between two control loop ticks")
	flags.Int("min-duty", configuration.DefaultMinimumDuty, "Duty a stopped fan has to exceed to be started")
	flags.String("fan", configuration.DefaultFanPath, "PWM file of the fan")
	flags.Bool("dry-run", false, "Compute and log the fan speed without writing it")

	bindFlag("pid.p", "pvalue")
	bindFlag("pid.i", "ivalue")
	bindFlag("pid.d", "dvalue")
	bindFlag("targetTemperature", "target-temp")
	bindFlag("pollInterval", "poll-interval")
	bindFlag("minimumDuty", "min-duty")
	bindFlag("fan.path", "fan")
	bindFlag("dryRun", "dry-run")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(sensor.Command)
}

func bindFlag(key string, flagName string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flagName)); err != nil {
		ui.Fatal("Unable to bind flag %s: %v", flagName, err)
	}
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose >= 1)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("boi", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("fanboi")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
