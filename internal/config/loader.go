package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/pydev/internal/log"
	"github.com/zjrosen/pydev/internal/paths"

	"github.com/spf13/viper"
)

// Load reads configuration from the given file, or from
// ~/.config/pydev/config.yaml when file is empty. A missing config file is
// not an error; defaults apply. Environment variables prefixed with PYDEV_
// override file values (e.g. PYDEV_PYTHON, PYDEV_VENV_DIR).
func Load(file string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("python", def.Python)
	v.SetDefault("venv_dir", def.VenvDir)
	v.SetDefault("test_runner", def.TestRunner)
	v.SetDefault("metadata_dirs", def.MetadataDirs)
	v.SetDefault("watch_debounce", def.WatchDebounce)
	v.SetDefault("color", def.Color)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.path", def.History.Path)
	v.SetDefault("tracing.enabled", def.Tracing.Enabled)
	v.SetDefault("tracing.exporter", def.Tracing.Exporter)

	v.SetEnvPrefix("PYDEV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(paths.DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			log.Debug(log.CatConfig, "no config file found, using defaults")
		} else {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		log.Debug(log.CatConfig, "loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.History.Path = paths.ExpandHome(cfg.History.Path)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
