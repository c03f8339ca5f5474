package main

import (
	"log/slog"
	"strconv"
	"strings"

	"docsync/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// parseSlogLevel maps a config level string to a slog.Level. Named levels
// and raw numeric values ("-4" is debug) are both accepted; anything else
// falls back to defaultLevel.
func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	switch level := strings.ToLower(strings.TrimSpace(value)); level {
	case "":
		return defaultLevel
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		if n, err := strconv.Atoi(level); err == nil {
			return slog.Level(n)
		}
		return defaultLevel
	}
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at
// Debug. Logs go to a rotating file so terminal output stays clean.
func configureLogger(cfg *config.Config, logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = cfg.Log.Filename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(cfg.Log.Level, slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
