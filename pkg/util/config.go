package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("ROUTING_BUS_WAIT_TIME", 6.0)
	viper.SetDefault("ROUTING_BUS_VELOCITY", 40.0)
	viper.SetDefault("ROUTE_CACHE_SIZE", 4096)
	viper.SetDefault("STAT_WORKERS", 4)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
}

// ReadConfig. read config file "config" from configDir; a missing file only leaves the defaults in place
func ReadConfig(configDir string) error {
	SetConfigDefaults()

	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

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
