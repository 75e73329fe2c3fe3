package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger is the shared instance; Init replaces it.
	Logger = logrus.New()
	logMu  sync.Mutex
)

// Config controls log level and optional rotating file output.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // empty means console only
	MaxSize    int    // MB per file before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	ConsoleOff bool // file only; the TUI owns the terminal
}

// Init configures the shared logger. Safe to call more than once.
func Init(config Config) error {
	logMu.Lock()
	defer logMu.Unlock()

	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	var writers []io.Writer
	if !config.ConsoleOff {
		writers = append(writers, os.Stdout)
	}
	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0o755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}
	logger.SetOutput(io.MultiWriter(writers...))

	Logger = logger
	return nil
}

// InitDefault sets up console-only info logging.
func InitDefault() error {
	return Init(Config{Level: "info"})
}

func Debug(args ...interface{}) { Logger.Debug(args...) }

func Debugf(format string, args ...interface{}) { Logger.Debugf(format, args...) }

func Info(args ...interface{}) { Logger.Info(args...) }

func Infof(format string, args ...interface{}) { Logger.Infof(format, args...) }

func Warn(args ...interface{}) { Logger.Warn(args...) }

func Warnf(format string, args ...interface{}) { Logger.Warnf(format, args...) }

func Error(args ...interface{}) { Logger.Error(args...) }

func Errorf(format string, args ...interface{}) { Logger.Errorf(format, args...) }

// WithField returns an entry tagged with a single field.
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}

// WithFields returns an entry tagged with several fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}
