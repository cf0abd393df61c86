package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
}

type ServerConfig struct {
	Port string
}

type DataConfig struct {
	// Mode selects the data client adapter: "mock" or "rest".
	Mode         string
	DatabasePath string
	RestBaseURL  string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Data: DataConfig{
			Mode:         getEnv("DATA_MODE", "mock"),
			DatabasePath: getEnv("DATABASE_PATH", "valia.db"),
			RestBaseURL:  getEnv("REST_BASE_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
