package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wheelibin/dusk/internal/constants"
)

type Window struct {
	// applied to the current time (UTC) before it is compared with the bounds
	Offset time.Duration `mapstructure:"offset"`
	// "HH:MM", "sunrise", "sunset", or "sunset-1h" style offsets
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type Config struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`

	PollInterval   time.Duration `mapstructure:"poll_interval"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	SensorThrottle time.Duration `mapstructure:"sensor_throttle"`

	LuxThreshold int    `mapstructure:"lux_threshold"`
	GroupName    string `mapstructure:"group_name"`
	Window       Window `mapstructure:"window"`
	GeoLocation  string `mapstructure:"geo_location"`

	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
	HistoryDB   string `mapstructure:"history_db"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// ConfigError is returned for any problem reading or validating the
// configuration. It is always fatal.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var defaultSearchPaths = []string{"/etc/dusk/", "$HOME/.config/dusk/", "."}

// ReadConfig looks for a file named config (.toml, .json, .yaml) in the
// given paths, or the default search paths when none are given. A missing
// file is not an error as long as the required values come from the
// environment.
func ReadConfig(paths ...string) (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	if len(paths) == 0 {
		paths = defaultSearchPaths
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigError{fmt.Errorf("error reading config file: %w", err)}
		}
	}

	return load(v)
}

// ReadConfigFile reads the config from an explicit file path.
func ReadConfigFile(filename string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{fmt.Errorf("error reading config file (%s): %w", filename, err)}
	}
	return load(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("poll_interval", constants.MainUpdateInterval)
	v.SetDefault("request_timeout", constants.DefaultRequestTimeout)
	v.SetDefault("sensor_throttle", time.Duration(0))
	v.SetDefault("lux_threshold", constants.DefaultLuxThreshold)
	v.SetDefault("group_name", constants.DefaultGroupName)
	v.SetDefault("window.offset", constants.WindowOffset)
	v.SetDefault("window.start", constants.WindowStart)
	v.SetDefault("window.end", constants.WindowEnd)
	v.SetDefault("geo_location", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("history_db", "")
	v.SetDefault("metrics_addr", "")

	// DUSK_API_KEY, DUSK_WINDOW_START, ...
	v.SetEnvPrefix("dusk")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api_url")
	_ = v.BindEnv("api_key")

	return v
}

func load(v *viper.Viper) (*Config, error) {
	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{fmt.Errorf("error parsing config: %w", err)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return &ConfigError{errors.New("api_url is required")}
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return &ConfigError{errors.New("api_key is required")}
	}
	if c.PollInterval <= 0 {
		return &ConfigError{fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)}
	}
	if c.RequestTimeout < 0 {
		return &ConfigError{fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)}
	}
	if c.SensorThrottle < 0 {
		return &ConfigError{fmt.Errorf("sensor_throttle must not be negative, got %s", c.SensorThrottle)}
	}
	if c.GroupName == "" {
		return &ConfigError{errors.New("group_name must not be empty")}
	}
	return nil
}
