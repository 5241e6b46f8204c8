package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	ServerAddr       string        `mapstructure:"SERVER_ADDR"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	LogFormat        string        `mapstructure:"LOG_FORMAT"`
	LogFile          string        `mapstructure:"LOG_FILE"`
	ClientID         string        `mapstructure:"CLIENT_ID"`
	ClientSecretHash string        `mapstructure:"CLIENT_SECRET_HASH"`
	TokenTTL         time.Duration `mapstructure:"TOKEN_TTL"`
	InsertBatchSize  int           `mapstructure:"INSERT_BATCH_SIZE"`
	MaxUploadBytes   int64         `mapstructure:"MAX_UPLOAD_BYTES"`
}

var keys = []string{
	"DATABASE_URL", "JWT_SECRET", "SERVER_ADDR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	"CLIENT_ID", "CLIENT_SECRET_HASH", "TOKEN_TTL", "INSERT_BATCH_SIZE", "MAX_UPLOAD_BYTES",
}

// Load reads the configuration from a .env file in dir (if present) and
// environment variables, which take precedence.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDR", ":8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("INSERT_BATCH_SIZE", 500)
	v.SetDefault("MAX_UPLOAD_BYTES", 256<<20)

	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}
