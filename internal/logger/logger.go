package logger

import (
	"os"

	"github.com/GumbaTW/DDNet-LB/internal/config"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger().
		Level(level)

	return logger
}
