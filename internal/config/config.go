package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode           string `mapstructure:"mode"`
	Port           int    `mapstructure:"port"`
	StaticPath     string `mapstructure:"static_path"`
	UploadDir      string `mapstructure:"upload_dir"`
	UploadMaxBytes int64  `mapstructure:"upload_max_bytes"`
	// Retention is how long uploaded files stay retrievable after the
	// file-shared event fires. Clients may reference a file until it
	// expires; after that the path serves 404.
	Retention  time.Duration `mapstructure:"retention"`
	StrictJoin bool          `mapstructure:"strict_join"`
	ReadLimit  int64         `mapstructure:"read_limit"`
	PingPeriod time.Duration `mapstructure:"ping_period"`
	Secret     string        `mapstructure:"secret"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("static_path", "./web")
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("upload_max_bytes", 50<<20)
	v.SetDefault("retention", "10m")
	v.SetDefault("strict_join", false)
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("secret", "change-me")

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
