package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values needed by the application.
// The mapstructure tags tell Viper how to map environment variables to struct fields.
type Config struct {
	DBSource            string        `mapstructure:"DB_SOURCE"`             // Database connection string
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`        // Address where the server will run (e.g., "localhost:8080")
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`   // Secret key for signing tokens
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"` // Duration tokens will remain valid (e.g., "15m", "720h")
	JoobleAPIURL        string        `mapstructure:"JOOBLE_API_URL"`        // Base URL of the Jooble job-search API
	JoobleAPIKey        string        `mapstructure:"JOOBLE_API_KEY"`        // API key appended to the Jooble URL
	FrontendURL         string        `mapstructure:"FRONTEND_URL"`          // Allowed CORS origin for the web client
}

// LoadConfig loads environment variables from a file and environment into the Config struct
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	// Environment variables override values from the file.
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
