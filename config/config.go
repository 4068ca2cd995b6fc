package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
}

var C Config

// Load 配置文件可选，环境变量覆盖，默认 3000 端口、不连 Redis
func Load() {
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("redis.addr", "REDIS_ADDR")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.AutomaticEnv()

	viper.SetConfigFile("config/config.yaml")
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("config loaded from %s", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
}
