package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the configs of the global logger.
type Config struct {
	Targets    []string `yaml:"targets"`
	Filename   string   `yaml:"filename"`
	LogLevel   string   `yaml:"level"`
	MaxSize    int      `yaml:"max_log_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var globalInst *logger

type logger struct {
	inst zerolog.Logger
}

// InitGlobalLogger initializes the global logger from config.
// It must be called once, before any logging happens.
func InitGlobalLogger(cfg *Config) {
	writers := make([]io.Writer, 0, len(cfg.Targets))

	for _, target := range cfg.Targets {
		switch target {
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})

		case "console":
			writers = append(writers, zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			})
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	globalInst = &logger{
		inst: zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger(),
	}
}

func getLogger() *logger {
	if globalInst == nil {
		InitGlobalLogger(&Config{
			Targets:  []string{"console"},
			LogLevel: "debug",
		})
	}

	return globalInst
}

func addFields(event *zerolog.Event, keyvals ...any) *zerolog.Event {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "!MISSING-VALUE!")
	}

	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = "!INVALID-KEY!"
		}

		switch value := keyvals[i+1].(type) {
		case error:
			event = event.AnErr(key, value)
		case string:
			event = event.Str(key, value)
		case int:
			event = event.Int(key, value)
		case int64:
			event = event.Int64(key, value)
		case float64:
			event = event.Float64(key, value)
		case bool:
			event = event.Bool(key, value)
		case time.Time:
			event = event.Time(key, value)
		default:
			event = event.Any(key, value)
		}
	}

	return event
}

func Debug(msg string, keyvals ...any) {
	addFields(getLogger().inst.Debug(), keyvals...).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	addFields(getLogger().inst.Info(), keyvals...).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	addFields(getLogger().inst.Warn(), keyvals...).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	addFields(getLogger().inst.Error(), keyvals...).Msg(msg)
}
