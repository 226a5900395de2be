package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Dataset   string `mapstructure:"dataset"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	PageSize  int    `mapstructure:"page_size"`
	Seed      int64  `mapstructure:"seed"`
	Scorer    string `mapstructure:"scorer"`
	LogDir    string `mapstructure:"log_dir"`
	LogFormat string `mapstructure:"log_format"`
	Prefs     string `mapstructure:"prefs"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".evalview")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolveString(flag, config string) string {
	if flag != "" {
		return flag
	}
	return config
}

func resolveInt(flag, config, fallback int) int {
	if flag > 0 {
		return flag
	}
	if config > 0 {
		return config
	}
	return fallback
}

func resolveInt64(flag, config int64) int64 {
	if flag != 0 {
		return flag
	}
	return config
}
