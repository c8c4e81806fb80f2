package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Practice PracticeConfig
}

type ServerConfig struct {
	Addr       string
	CORSOrigin string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PracticeConfig struct {
	RoundTTLSec int
	FlushMs     int
}

// Load reads config.yaml if present, with environment variables and defaults
// layered underneath.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("keyatlas")
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.cors_origin", "*")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("practice.round_ttl_sec", 600)
	viper.SetDefault("practice.flush_ms", 250)

	// config file is optional
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Addr:       viper.GetString("server.addr"),
			CORSOrigin: viper.GetString("server.cors_origin"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Practice: PracticeConfig{
			RoundTTLSec: viper.GetInt("practice.round_ttl_sec"),
			FlushMs:     viper.GetInt("practice.flush_ms"),
		},
	}

	return cfg, nil
}
