package cfg

import (
	"log/slog"
	"os"
)

// Config конфигурация сервиса из переменных окружения
type Config struct {
	HTTPAddr      string     // Адрес HTTP-сервера
	InvoicesFile  string     // Путь к файлу-хранилищу счетов
	RemoteAPIBase string     // Базовый URL внешнего API счетов
	LogLevel      slog.Level // Уровень логирования
}

// Load читает конфигурацию; для отсутствующих переменных берутся умолчания
func Load() *Config {
	c := &Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":9091"),
		InvoicesFile:  envOr("INVOICES_FILE", "./data/invoices.json"),
		RemoteAPIBase: envOr("REMOTE_API_BASE", "http://localhost:3001"),
		LogLevel:      slog.LevelInfo,
	}
	if os.Getenv("LOG_LEVEL") == "debug" {
		c.LogLevel = slog.LevelDebug
	}
	return c
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
