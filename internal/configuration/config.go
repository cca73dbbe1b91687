package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	ConfigName = "fanboi"
	EnvPrefix  = "FANBOI"
)

// keys of the original flat fanboi.toml
const (
	legacyCpuTemperatureKey = "cpu_temperature_ctl"
	legacyGpuTemperatureKey = "gpu_temperature_ctl"
	legacyFanPwmKey         = "fan_pwm_ctl"
)

// Configuration is the resolved configuration of fanboi.
// It is built once at startup and never modified afterward.
type Configuration struct {
	Pid               PidConfig      `mapstructure:"pid"`
	TargetTemperature float64        `mapstructure:"targetTemperature"`
	Sensors           []SensorConfig `mapstructure:"sensors"`
	Fan               FanConfig      `mapstructure:"fan"`

	// PollInterval is the time between two control loop ticks, in whole seconds
	PollInterval time.Duration `mapstructure:"pollInterval"`
	// MinimumDuty is the duty a stopped fan has to exceed to be started
	MinimumDuty int `mapstructure:"minimumDuty"`

	DryRun    bool `mapstructure:"dryRun"`
	Verbosity int  `mapstructure:"verbosity"`

	Io  IoConfig  `mapstructure:"io"`
	Api ApiConfig `mapstructure:"api"`
}

type PidConfig struct {
	P float64 `mapstructure:"p"`
	I float64 `mapstructure:"i"`
	D float64 `mapstructure:"d"`
	// Limit is the symmetric limit applied to each term and to the combined output
	Limit float64 `mapstructure:"limit"`
}

type SensorConfig struct {
	ID   string `json:"id" mapstructure:"id"`
	Path string `json:"path" mapstructure:"path"`
}

type FanConfig struct {
	Path string `mapstructure:"path"`
	// MaxValue is the native value of the actuator that corresponds to 100% duty
	MaxValue int `mapstructure:"maxValue"`
}

type IoConfig struct {
	// Retries is the number of additional attempts of a failed sensor or fan access
	Retries    int           `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retryDelay"`
}

type ApiConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

const (
	DefaultP                 = 1.0
	DefaultI                 = 0.7
	DefaultD                 = 4.0
	DefaultPidLimit          = 100.0
	DefaultTargetTemperature = 40.0
	DefaultPollInterval      = 10 * time.Second
	DefaultMinimumDuty       = 50
	DefaultFanPath           = "/sys/devices/pwm-fan/target_pwm"
	DefaultFanMaxValue       = 100
	DefaultApiHost           = "localhost"
	DefaultApiPort           = 9001
)

// DefaultSensors are the thermal zones read when no sensors are configured.
var DefaultSensors = []SensorConfig{
	{ID: "cpu", Path: "/sys/class/thermal/thermal_zone0/temp"},
	{ID: "gpu", Path: "/sys/class/thermal/thermal_zone1/temp"},
}

// InitConfig prepares viper to read the config file at cfgFile,
// or to search for it in the default locations if cfgFile is empty.
func InitConfig(cfgFile string) {
	viper.SetConfigName(ConfigName)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath("/etc/fanboi/")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues(viper.GetViper())
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("pid.p", DefaultP)
	v.SetDefault("pid.i", DefaultI)
	v.SetDefault("pid.d", DefaultD)
	v.SetDefault("pid.limit", DefaultPidLimit)
	v.SetDefault("targetTemperature", DefaultTargetTemperature)
	v.SetDefault("pollInterval", DefaultPollInterval)
	v.SetDefault("minimumDuty", DefaultMinimumDuty)
	v.SetDefault("dryRun", false)
	v.SetDefault("verbosity", 0)

	v.SetDefault("fan.path", DefaultFanPath)
	v.SetDefault("fan.maxValue", DefaultFanMaxValue)

	v.SetDefault("io.retries", 0)
	v.SetDefault("io.retryDelay", 1*time.Second)

	v.SetDefault("api.enabled", false)
	v.SetDefault("api.host", DefaultApiHost)
	v.SetDefault("api.port", DefaultApiPort)
}

// ReadConfigFile reads the config file, if any, and returns its path.
// A missing config file is only an error if its path was given explicitly.
func ReadConfigFile(explicit bool) (string, error) {
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed(), nil
}

// LoadConfig decodes the values known to viper into a Configuration.
func LoadConfig() (Configuration, error) {
	return decode(viper.GetViper())
}

func decode(v *viper.Viper) (Configuration, error) {
	applyLegacyKeys(v)

	var config Configuration
	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		secondsToDurationHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return config, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if len(config.Sensors) <= 0 {
		config.Sensors = append([]SensorConfig{}, DefaultSensors...)
	}
	return config, nil
}

// applyLegacyKeys maps the keys of the original flat config file onto the structured keys.
// They are registered as defaults, so the structured keys win whenever they are given
// in the config file, the environment or on the command line.
func applyLegacyKeys(v *viper.Viper) {
	var legacySensors []interface{}
	if path := v.GetString(legacyCpuTemperatureKey); path != "" {
		legacySensors = append(legacySensors, map[string]interface{}{"id": "cpu", "path": path})
	}
	if path := v.GetString(legacyGpuTemperatureKey); path != "" {
		legacySensors = append(legacySensors, map[string]interface{}{"id": "gpu", "path": path})
	}
	if len(legacySensors) > 0 {
		v.SetDefault("sensors", legacySensors)
	}
	if path := v.GetString(legacyFanPwmKey); path != "" {
		v.SetDefault("fan.path", path)
	}
}
