package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/Wayfindx/pkg"
	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "10s")
	viper.SetDefault("FLOOR_PENALTY", pkg.DEFAULT_FLOOR_PENALTY)
	viper.SetDefault("WALKING_SPEED", pkg.DEFAULT_WALKING_SPEED)
	viper.SetDefault("BUILDINGS_FILE", "./data/buildings.yaml")
	viper.SetDefault("HISTORY_SIZE", 1024)
	viper.SetDefault("HISTORY_PER_USER", 20)
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("NEAREST_SEARCH_RADIUS", 50.0)
	viper.SetDefault("LOG_LEVEL", "info")
}

// ReadConfig reads config.yaml from configPath. a missing config file is not an error, defaults
// and environment variables are used instead.
func ReadConfig(configPath string) error {
	SetConfigDefaults()
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath(configPath)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
