// Package config provides configuration management for pomobar.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xvierd/pomobar/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g.
// POMOBAR_SCHEDULE_COUNT.
const EnvPrefix = "POMOBAR"

// Config holds all configuration for the widget.
type Config struct {
	Tick          Duration           `mapstructure:"tick" toml:"tick"`
	Schedule      ScheduleConfig     `mapstructure:"schedule" toml:"schedule"`
	Theme         ThemeConfig        `mapstructure:"theme" toml:"theme"`
	Notifications NotificationConfig `mapstructure:"notifications" toml:"notifications"`
	Log           LogConfig          `mapstructure:"log" toml:"log"`
}

// ScheduleConfig holds the focus/pause cycle settings.
type ScheduleConfig struct {
	Count     int      `mapstructure:"count" toml:"count"`
	Focus     Duration `mapstructure:"focus" toml:"focus"`
	Pause     Duration `mapstructure:"pause" toml:"pause"`
	LongPause Duration `mapstructure:"long_pause" toml:"long_pause"`
}

// ThemeConfig holds the Pango foreground colors of the status text. Empty
// values keep the bar's default color.
type ThemeConfig struct {
	ColorFocus  string `mapstructure:"color_focus" toml:"color_focus"`
	ColorPause  string `mapstructure:"color_pause" toml:"color_pause"`
	ColorPaused string `mapstructure:"color_paused" toml:"color_paused"`
	ColorReady  string `mapstructure:"color_ready" toml:"color_ready"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
	Sound   bool `mapstructure:"sound" toml:"sound"`
}

// LogConfig holds diagnostic logging settings. Logs go to stderr.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tick: Duration(time.Second),
		Schedule: ScheduleConfig{
			Count:     5,
			Focus:     Duration(25 * time.Minute),
			Pause:     Duration(5 * time.Minute),
			LongPause: Duration(15 * time.Minute),
		},
		Notifications: NotificationConfig{
			Enabled: false,
			Sound:   false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"schedule.count":        "count",
	"schedule.focus":        "focus",
	"schedule.pause":        "pause",
	"schedule.long_pause":   "long-pause",
	"tick":                  "tick",
	"notifications.enabled": "notify",
	"log.level":             "log-level",
}

// Load builds the configuration from defaults, the config file, POMOBAR_*
// environment variables and flags, in increasing order of precedence.
// An empty path selects the default location, where a missing file is
// fine; an explicit path must exist.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if explicit || !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to path as TOML.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.Set("tick", cfg.Tick.String())
	v.Set("schedule.count", cfg.Schedule.Count)
	v.Set("schedule.focus", cfg.Schedule.Focus.String())
	v.Set("schedule.pause", cfg.Schedule.Pause.String())
	v.Set("schedule.long_pause", cfg.Schedule.LongPause.String())
	v.Set("theme.color_focus", cfg.Theme.ColorFocus)
	v.Set("theme.color_pause", cfg.Theme.ColorPause)
	v.Set("theme.color_paused", cfg.Theme.ColorPaused)
	v.Set("theme.color_ready", cfg.Theme.ColorReady)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

// GetConfigPath returns the default path of the config file.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "pomobar", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("tick", defaults.Tick.String())
	v.SetDefault("schedule.count", defaults.Schedule.Count)
	v.SetDefault("schedule.focus", defaults.Schedule.Focus.String())
	v.SetDefault("schedule.pause", defaults.Schedule.Pause.String())
	v.SetDefault("schedule.long_pause", defaults.Schedule.LongPause.String())
	v.SetDefault("theme.color_focus", defaults.Theme.ColorFocus)
	v.SetDefault("theme.color_pause", defaults.Theme.ColorPause)
	v.SetDefault("theme.color_paused", defaults.Theme.ColorPaused)
	v.SetDefault("theme.color_ready", defaults.Theme.ColorReady)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("notifications.sound", defaults.Notifications.Sound)
	v.SetDefault("log.level", defaults.Log.Level)
}

// Validate checks the values the widget cannot run with.
func (c *Config) Validate() error {
	if _, err := c.BuildSchedule(); err != nil {
		return err
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", domain.ErrInvalidConfiguration, c.Tick)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// BuildSchedule creates the interval schedule described by the config.
func (c *Config) BuildSchedule() (domain.Schedule, error) {
	return domain.BuildSchedule(
		c.Schedule.Count,
		time.Duration(c.Schedule.Focus),
		time.Duration(c.Schedule.Pause),
		time.Duration(c.Schedule.LongPause),
	)
}

// TickPeriod returns the refresh period of the status line.
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.Tick)
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, fmt.Errorf("%w: log level %q", domain.ErrInvalidConfiguration, c.Log.Level)
	}
	return level, nil
}
