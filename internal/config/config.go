package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the application configuration, loaded from an env file
// and overridable through the environment.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	MigrationURL  string `mapstructure:"MIGRATION_URL"`
}

// LoadConfig reads configuration from app.env in the given path.
// A missing config file is not an error; defaults and the environment apply.
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("MIGRATION_URL", "file://migrations")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}
	err = viper.Unmarshal(&cfg)
	return
}
