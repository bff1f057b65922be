package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                int           `mapstructure:"PORT"`
	MongoURI            string        `mapstructure:"MONGO_URI"`
	MongoDatabase       string        `mapstructure:"MONGO_DATABASE"`
	MongoConnectTimeout time.Duration `mapstructure:"MONGO_CONNECT_TIMEOUT"`
	MongoSocketTimeout  time.Duration `mapstructure:"MONGO_SOCKET_TIMEOUT"`
	// MongoRetryConnect selects the startup policy on a failed connection:
	// retry every MongoRetryInterval indefinitely, or fail fast.
	MongoRetryConnect  bool          `mapstructure:"MONGO_RETRY_CONNECT"`
	MongoRetryInterval time.Duration `mapstructure:"MONGO_RETRY_INTERVAL"`
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	RedisPassword      string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int           `mapstructure:"REDIS_DB"`
	SeedOnStart        bool          `mapstructure:"SEED_ON_START"`
	SeedDir            string        `mapstructure:"SEED_DIR"`
}

func LoadConfig() (*Config, error) {
	// Load .env if present; environment variables remain the source of truth.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 5000)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "teacher_management")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("MONGO_SOCKET_TIMEOUT", "45s")
	viper.SetDefault("MONGO_RETRY_CONNECT", false)
	viper.SetDefault("MONGO_RETRY_INTERVAL", "5s")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SEED_ON_START", true)
	viper.SetDefault("SEED_DIR", "data")

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
