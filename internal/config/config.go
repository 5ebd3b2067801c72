package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-dpad"
)

// Config holds settings shared by the dpad command and its hosts.
type Config struct {
	Debug DebugConfig `mapstructure:"debug"`
	Nav   NavConfig   `mapstructure:"nav"`
	Watch WatchConfig `mapstructure:"watch"`
	UI    UIConfig    `mapstructure:"ui"`
}

// DebugConfig controls the debug log.
type DebugConfig struct {
	LogPath string `mapstructure:"log_path"`
}

// NavConfig holds controller options.
type NavConfig struct {
	ConeAngle     float64 `mapstructure:"cone_angle"`
	FocusFallback bool    `mapstructure:"focus_fallback"`
	RefocusByID   bool    `mapstructure:"refocus_by_id"`
}

// WatchConfig holds layout watcher settings.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// UIConfig holds presentation settings for the terminal host.
type UIConfig struct {
	WrapLabels bool `mapstructure:"wrap_labels"`
}

// Load reads configuration from file and env. The file is $DPAD_CONFIG when
// set, otherwise ~/.config/dpad/config.toml if it exists. Env var overrides
// use prefix DPAD_, e.g. DPAD_NAV_CONE_ANGLE.
func Load() (Config, error) {
	if path := os.Getenv("DPAD_CONFIG"); path != "" {
		return LoadFrom(path)
	}
	v := newViper()
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dpad"))
	v.SetConfigName("config")
	return read(v, false)
}

// LoadFrom reads configuration from the given TOML file plus env overrides.
// A missing file is an error.
func LoadFrom(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return read(v, true)
}

func newViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("debug.log_path", "")
	v.SetDefault("nav.cone_angle", dpad.DefaultConeAngle)
	v.SetDefault("nav.focus_fallback", false)
	v.SetDefault("nav.refocus_by_id", true)
	v.SetDefault("watch.debounce", 150*time.Millisecond)
	v.SetDefault("ui.wrap_labels", false)

	v.SetConfigType("toml")
	v.SetEnvPrefix("DPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func read(v *viper.Viper, required bool) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if required || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings that would be rejected later by the controller
// or watcher.
func (c Config) Validate() error {
	if c.Nav.ConeAngle <= 0 || c.Nav.ConeAngle > 90 {
		return fmt.Errorf("nav.cone_angle must be in (0, 90], got %g", c.Nav.ConeAngle)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// ControllerOptions converts the nav settings to controller options.
func (c Config) ControllerOptions() []dpad.Option {
	opts := []dpad.Option{dpad.WithConeAngle(c.Nav.ConeAngle)}
	if c.Nav.FocusFallback {
		opts = append(opts, dpad.WithFocusFallback())
	}
	if c.Nav.RefocusByID {
		opts = append(opts, dpad.WithRefocusByID())
	}
	return opts
}
