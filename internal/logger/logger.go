package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging scoped by component
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

type Config struct {
	Level   zerolog.Level
	UseJSON bool
}

// ConfigFromEnv reads IMAGECONVERTER_LOG_LEVEL and IMAGECONVERTER_JSON_LOGS.
func ConfigFromEnv() Config {
	return Config{
		Level:   ParseLevel(os.Getenv("IMAGECONVERTER_LOG_LEVEL")),
		UseJSON: os.Getenv("IMAGECONVERTER_JSON_LOGS") == "true",
	}
}

func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type ZerologAdapter struct {
	logger zerolog.Logger
}

func New(writer io.Writer, cfg Config) *ZerologAdapter {
	if !cfg.UseJSON {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"}
	}
	return NewZerolog(writer, cfg.Level)
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.logger.Info().Str("component", component).Fields(fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.logger.Error().Str("component", component).Err(err).Fields(fields).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.logger.Warn().Str("component", component).Fields(fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.logger.Debug().Str("component", component).Fields(fields).Msg(message)
}

// NoOp discards everything.
type NoOp struct{}

func (NoOp) Info(string, string, map[string]interface{})    {}
func (NoOp) Error(string, error, map[string]interface{})    {}
func (NoOp) Warning(string, string, map[string]interface{}) {}
func (NoOp) Debug(string, string, map[string]interface{})   {}
