package config

import (
	"strings"

	"github.com/lshigami/learnhub/internal/content"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Database    Database
	Store       Store
	AccessCodes []string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Store struct {
	// Driver selects the persistence adapter: "postgres" or "memory".
	Driver string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STORE_DRIVER", "postgres")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Store.Driver = viper.GetString("STORE_DRIVER")

	// The allowlist is fixed for the process lifetime. ACCESS_CODES is a
	// comma-separated override; the bundled codes are used otherwise.
	if raw := viper.GetString("ACCESS_CODES"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				config.AccessCodes = append(config.AccessCodes, code)
			}
		}
	} else {
		config.AccessCodes = content.DefaultAccessCodes
	}

	log.Info().Str("port", config.Server.Port).Str("store", config.Store.Driver).
		Int("access_codes", len(config.AccessCodes)).Msg("Config loaded")
	return &config, nil
}
