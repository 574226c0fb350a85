package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	DBPath      string
	OutputPath  string
	OutputDir   string
	PlayersFile string
	Top         int
	ServeAddr   string
	ServeDir    string
	LogLevel    string
}

// Load reads defaults from .env / environment. Command flags overwrite
// individual fields afterwards.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:     getEnv("DB_PATH", "data/ddnet.sqlite"),
		OutputPath: getEnv("OUTPUT_PATH", "leaderboard.json"),
		OutputDir:  getEnv("OUTPUT_DIR", "profiles"),
		Top:        getEnvInt("TOP", 0),
		ServeAddr:  getEnv("SERVE_ADDR", ":8080"),
		ServeDir:   getEnv("SERVE_DIR", "public"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) Log(logger zerolog.Logger) {
	logger.Debug().
		Str("db_path", c.DBPath).
		Str("output_path", c.OutputPath).
		Str("output_dir", c.OutputDir).
		Str("log_level", c.LogLevel).
		Int("top", c.Top).
		Msg("configuration loaded")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
