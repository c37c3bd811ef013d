package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress  string   `mapstructure:"SERVER_ADDRESS"`  // e.g., ":8080"
	AppEnv         string   `mapstructure:"APP_ENV"`         // "production" switches gin to release mode
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"` // CORS origins for the frontend

	// AI Configuration
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"` // empty disables the AI planner
	OpenAIModel string `mapstructure:"OPENAI_MODEL"`   // e.g., "gpt-4o-mini"

	// Storage Configuration
	RedisAddr     string `mapstructure:"REDIS_ADDR"` // empty selects the in-memory store
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Generation Configuration
	ProjectTTLHours int `mapstructure:"PROJECT_TTL_HOURS"` // lifetime of stored projects
	MaxPages        int `mapstructure:"MAX_PAGES"`         // cap on pages per generated site
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("PROJECT_TTL_HOURS", 168)
	viper.SetDefault("MAX_PAGES", 7)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set. AI planning will use the deterministic fallback.")
	}
	if config.RedisAddr == "" {
		log.Println("WARN: REDIS_ADDR is not set. Projects will be stored in memory and lost on restart.")
	}

	return
}
