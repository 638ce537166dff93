// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port     int `mapstructure:"port"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Upstream struct {
		Drama struct {
			BaseURL string `mapstructure:"base_url"`
		} `mapstructure:"drama"`
		Manga struct {
			BaseURL string `mapstructure:"base_url"`
		} `mapstructure:"manga"`
	} `mapstructure:"upstream"`
	Scraper struct {
		TimeoutSeconds int `mapstructure:"timeout_seconds"`
		// Embed hosts that only play back through client-side JS and can
		// never yield a manifest by scraping. They are skipped without a fetch.
		Blacklist []string `mapstructure:"blacklist"`
	} `mapstructure:"scraper"`
	Cache struct {
		Size       int `mapstructure:"size"`
		TTLMinutes int `mapstructure:"ttl_minutes"`
	} `mapstructure:"cache"`
	History struct {
		RetentionDays        int `mapstructure:"retention_days"`
		PruneIntervalMinutes int `mapstructure:"prune_interval_minutes"`
	} `mapstructure:"history"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory

	// --- Environment Variable Overrides ---
	// This tells Viper to look for environment variables with a "BINGE_" prefix.
	// e.g., BINGE_DATABASE_PATH will override the `database.path` key.
	viper.SetEnvPrefix("BINGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("port", 8080)
	viper.SetDefault("database.path", "./binge.db")
	viper.SetDefault("upstream.drama.base_url", "https://asianc.sh")
	viper.SetDefault("upstream.manga.base_url", "https://mangabats.com")
	viper.SetDefault("scraper.timeout_seconds", 30)
	viper.SetDefault("scraper.blacklist", []string{"doodstream", "mixdrop", "mp4upload"})
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl_minutes", 10)
	viper.SetDefault("history.retention_days", 0) // 0 keeps history forever
	viper.SetDefault("history.prune_interval_minutes", 720)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
