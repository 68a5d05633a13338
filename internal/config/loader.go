package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix      = "QUACKCHAT"
	configFileName = "quackchat"
)

// Load reads configuration from the given file path, or from the standard
// search locations when path is empty, applying defaults and environment
// overrides. A missing config file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("typing.base_delay", defaults.Typing.BaseDelay)
	v.SetDefault("typing.jitter", defaults.Typing.Jitter)
	v.SetDefault("playback.settle_delay", defaults.Playback.SettleDelay)
	v.SetDefault("playback.avatar_fade", defaults.Playback.AvatarFade)
	v.SetDefault("audio.enabled", defaults.Audio.Enabled)
	v.SetDefault("audio.muted", defaults.Audio.Muted)
	v.SetDefault("audio.volume", defaults.Audio.Volume)
	v.SetDefault("speakers.a", defaults.Speakers.A)
	v.SetDefault("speakers.b", defaults.Speakers.B)
	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("log.level", defaults.Log.Level)
}

func searchDirs() []string {
	dirs := []string{}
	if base, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(base, "quackchat"))
	}
	dirs = append(dirs, ".")
	return dirs
}

func (c *Config) validate() error {
	if c.Typing.BaseDelay < 0 {
		return fmt.Errorf("typing.base_delay must not be negative")
	}
	if c.Typing.Jitter < 0 {
		return fmt.Errorf("typing.jitter must not be negative")
	}
	if c.Playback.SettleDelay < 0 {
		return fmt.Errorf("playback.settle_delay must not be negative")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1")
	}
	return nil
}
