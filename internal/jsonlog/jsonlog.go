package jsonlog

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
)

type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return ""
	}
}

// Logger writes one JSON object per entry. Entries below minLevel are dropped.
type Logger struct {
	zl       zerolog.Logger
	minLevel Level
}

func New(out io.Writer, minLevel Level) *Logger {
	return &Logger{
		zl:       zerolog.New(zerolog.SyncWriter(out)).With().Timestamp().Logger(),
		minLevel: minLevel,
	}
}

func (l *Logger) PrintInfo(message string, properties map[string]string) {
	l.print(LevelInfo, message, properties)
}

func (l *Logger) PrintError(err error, properties map[string]string) {
	l.print(LevelError, err.Error(), properties)
}

// PrintFatal logs at FATAL and terminates the process.
func (l *Logger) PrintFatal(err error, properties map[string]string) {
	l.print(LevelFatal, err.Error(), properties)
	os.Exit(1)
}

func (l *Logger) print(level Level, message string, properties map[string]string) {
	if level < l.minLevel {
		return
	}

	var event *zerolog.Event
	switch level {
	case LevelInfo:
		event = l.zl.Info()
	case LevelError:
		event = l.zl.Error()
	default:
		// WithLevel logs at fatal without calling os.Exit
		event = l.zl.WithLevel(zerolog.FatalLevel)
	}

	if len(properties) > 0 {
		dict := zerolog.Dict()
		for k, v := range properties {
			dict.Str(k, v)
		}
		event.Dict("properties", dict)
	}

	if level >= LevelError {
		event.Str("trace", string(debug.Stack()))
	}

	event.Msg(message)
}

// Write lets the logger back an http.Server ErrorLog. Everything written is
// logged at ERROR.
func (l *Logger) Write(message []byte) (n int, err error) {
	l.print(LevelError, string(message), nil)
	return len(message), nil
}

// Printf lets the logger back gorm's logger.Writer.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.print(LevelInfo, fmt.Sprintf(format, args...), nil)
}
