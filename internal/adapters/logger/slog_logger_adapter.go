package logger_adapter

import (
	"io"
	"listing-service/internal/core/port"
	"log/slog"
	"os"
	"sort"

	"github.com/lmittmann/tint"
)

// SlogAdapter реализует LoggerPort поверх log/slog.
type SlogAdapter struct {
	logger *slog.Logger
}

type SlogConfig struct {
	// Writer по умолчанию os.Stdout.
	Writer    io.Writer
	Level     slog.Leveler
	AddSource bool
	IsJSON    bool
	// UseColor включает tint, игнорируется при IsJSON.
	UseColor bool
}

func NewSlogAdapter(cfg SlogConfig) *SlogAdapter {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	var handler slog.Handler
	switch {
	case cfg.IsJSON:
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{AddSource: cfg.AddSource, Level: cfg.Level})
	case cfg.UseColor:
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		handler = slog.NewTextHandler(cfg.Writer, &slog.HandlerOptions{AddSource: cfg.AddSource, Level: cfg.Level})
	}

	return &SlogAdapter{logger: slog.New(handler)}
}

// toAttrs сортирует ключи, чтобы порядок полей в строке лога был стабильным.
func toAttrs(fields port.Fields) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return attrs
}

func (a *SlogAdapter) Info(msg string, fields port.Fields) {
	a.logger.Info(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields port.Fields) {
	a.logger.Warn(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) Error(msg string, err error, fields port.Fields) {
	attrs := toAttrs(fields)
	if err != nil {
		if a.usesTint() {
			attrs = append(attrs, tint.Err(err))
		} else {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
	}
	a.logger.Error(msg, attrs...)
}

func (a *SlogAdapter) Debug(msg string, fields port.Fields) {
	a.logger.Debug(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &SlogAdapter{logger: a.logger.With(toAttrs(fields)...)}
}

func (a *SlogAdapter) usesTint() bool {
	switch a.logger.Handler().(type) {
	case *slog.JSONHandler, *slog.TextHandler:
		return false
	}
	return true
}
