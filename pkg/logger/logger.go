package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"notification-service/pkg/config"
)

// Logger wraps a configured logrus instance plus the rotating file writer
// (if any) so both can be torn down at shutdown.
type Logger struct {
	log    *logrus.Logger
	closer io.Closer
}

// NewLogger builds a Logger from config. Output "file" enables size-based
// rotation via lumberjack; anything else logs to stdout.
func NewLogger(cfg *config.Config) *Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var closer io.Closer
	if cfg.Log.Output == "file" && cfg.Log.Filename != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.Filename,
			MaxSize:    cfg.Log.MaxSize,
			MaxAge:     cfg.Log.MaxAge,
			MaxBackups: cfg.Log.MaxBackups,
			Compress:   cfg.Log.Compress,
		}
		l.SetOutput(rotator)
		closer = rotator
	} else {
		l.SetOutput(os.Stdout)
	}

	return &Logger{log: l, closer: closer}
}

// Close flushes and closes the underlying file writer when present.
func (l *Logger) Close() {
	if l != nil && l.closer != nil {
		_ = l.closer.Close()
	}
}

var global = &Logger{log: logrus.StandardLogger()}

// SetGlobalLogger installs the process-wide logger. Call once in app.Run.
func SetGlobalLogger(l *Logger) {
	if l != nil {
		global = l
	}
}

func Debugf(format string, args ...interface{}) { global.log.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { global.log.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { global.log.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { global.log.Errorf(format, args...) }

// Fatal logs the message and exits the process.
func Fatal(msg string) { global.log.Fatal(msg) }

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a child context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID extracts the request id from ctx, empty when absent.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext returns a log entry annotated with the request id, so that
// every line of a single call can be correlated across adapters.
func WithContext(ctx context.Context) *logrus.Entry {
	if id := RequestID(ctx); id != "" {
		return global.log.WithField("request_id", id)
	}
	return logrus.NewEntry(global.log)
}
