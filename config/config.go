package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Mapstructure
// tags map environment variables and config file keys. Credentials are
// only ever injected here at startup, never compiled in.
type Config struct {
	// Server Configuration
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`  // e.g. ":8080"
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"` // comma-separated CORS origins, "*" for any

	// Generation provider
	OpenAIKey       string `mapstructure:"OPENAI_API_KEY"`
	GenerationModel string `mapstructure:"GENERATION_MODEL"`  // e.g. "gpt-4o"
	MaxOutputTokens int    `mapstructure:"MAX_OUTPUT_TOKENS"` // per-completion output budget

	// Image search (optional; decoration is skipped without a key)
	UnsplashAccessKey string `mapstructure:"UNSPLASH_ACCESS_KEY"`
	UnsplashEndpoint  string `mapstructure:"UNSPLASH_ENDPOINT"` // override for tests/proxies
	DecorateImages    bool   `mapstructure:"DECORATE_IMAGES"`

	// Project store
	ProjectTTLMinutes int `mapstructure:"PROJECT_TTL_MINUTES"` // 0 = keep forever
}

// LoadConfig reads configuration from config.yaml and environment
// variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("GENERATION_MODEL", "gpt-4o")
	viper.SetDefault("MAX_OUTPUT_TOKENS", 8192)
	viper.SetDefault("UNSPLASH_ENDPOINT", "")
	viper.SetDefault("DECORATE_IMAGES", true)
	viper.SetDefault("PROJECT_TTL_MINUTES", 240)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found, relying on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set; generation requests will fail.")
	}
	if config.UnsplashAccessKey == "" && config.DecorateImages {
		log.Println("WARN: DECORATE_IMAGES is on but UNSPLASH_ACCESS_KEY is not set; decoration will be skipped.")
	}

	return
}
