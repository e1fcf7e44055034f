package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort           int           `mapstructure:"APP_PORT"`
	DatabasePath      string        `mapstructure:"DATABASE_PATH"`
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	DefaultModel      string        `mapstructure:"DEFAULT_MODEL"`
	SupportModel      string        `mapstructure:"SUPPORT_MODEL"`
	SystemInstruction string        `mapstructure:"SYSTEM_INSTRUCTION"`
	StreamIdleTimeout time.Duration `mapstructure:"STREAM_IDLE_TIMEOUT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/orchestrator.db")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("DEFAULT_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("SUPPORT_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("SYSTEM_INSTRUCTION", "You are a helpful and professional AI assistant.")
	viper.SetDefault("STREAM_IDLE_TIMEOUT", 90*time.Second)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
