// Package config loads barstat settings from defaults, an optional YAML
// file, a .env file and BARSTAT_ environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "barstat"

type Config struct {
	LogLevel       zapcore.Level `mapstructure:"-"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	Paths    PathsConfig    `mapstructure:"paths"`
	Battery  BatteryConfig  `mapstructure:"battery"`
	Network  NetworkConfig  `mapstructure:"network"`
	Wireless WirelessConfig `mapstructure:"wireless"`
	Audio    AudioConfig    `mapstructure:"audio"`
}

// PathsConfig points the sysfs readers at their device trees.
type PathsConfig struct {
	PowerSupply string `mapstructure:"power_supply"`
	Thermal     string `mapstructure:"thermal"`
	Net         string `mapstructure:"net"`
}

type BatteryConfig struct {
	// Strategy is sysfs, command or auto.
	Strategy string   `mapstructure:"strategy"`
	Command  string   `mapstructure:"command"`
	Args     []string `mapstructure:"args"`
}

type NetworkConfig struct {
	// Interface is detected when empty.
	Interface string `mapstructure:"interface"`
}

type WirelessConfig struct {
	Interface string `mapstructure:"interface"`
	Command   string `mapstructure:"command"`
}

type AudioConfig struct {
	Command string `mapstructure:"command"`
	Device  string `mapstructure:"device"`
	Control string `mapstructure:"control"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("poll_interval", "1s")
	v.SetDefault("command_timeout", "2s")

	v.SetDefault("paths.power_supply", "/sys/class/power_supply")
	v.SetDefault("paths.thermal", "/sys/class/thermal")
	v.SetDefault("paths.net", "/sys/class/net")

	v.SetDefault("battery.strategy", "auto")
	v.SetDefault("battery.command", "acpi")
	v.SetDefault("battery.args", []string{"-b"})

	v.SetDefault("network.interface", "")
	v.SetDefault("wireless.interface", "")
	v.SetDefault("wireless.command", "iw")

	v.SetDefault("audio.command", "amixer")
	v.SetDefault("audio.device", "default")
	v.SetDefault("audio.control", "Master")
}

// Load reads configuration. file may be empty, in which case CONFIG_FILE
// is consulted; a named file that does not exist is an error.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		file = os.Getenv("CONFIG_FILE")
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	level, err := zapcore.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("config param log_level: %w", err)
	}
	cfg.LogLevel = level

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PollInterval < 250*time.Millisecond {
		return errors.New("config param poll_interval should be >= 250ms")
	}
	if c.CommandTimeout <= 0 {
		return errors.New("config param command_timeout should be > 0")
	}
	switch c.Battery.Strategy {
	case "sysfs", "command", "auto":
	default:
		return fmt.Errorf("config param battery.strategy must be sysfs, command or auto, got %q", c.Battery.Strategy)
	}
	if c.Battery.Strategy == "command" && c.Battery.Command == "" {
		return errors.New("config param battery.command is required for the command strategy")
	}
	if c.Audio.Control == "" {
		return errors.New("config param audio.control must not be empty")
	}
	return nil
}
