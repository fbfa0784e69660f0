package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// Mode is the gin mode: "debug" or "release".
	Mode string `mapstructure:"mode"`
}

// SessionConfig controls the shared workout session tick.
type SessionConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// SeedConfig controls demo data loading at startup.
type SeedConfig struct {
	DemoData bool `mapstructure:"demo_data"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override file values, with nested keys
	// flattened: server.address -> SERVER_ADDRESS.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("session.tick_interval", "1s")
	viper.SetDefault("seed.demo_data", true)
	viper.SetDefault("log.level", "info")

	err = viper.ReadInConfig()
	// Config file is optional; defaults and env vars are enough to run.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
