// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level, encoding and destination of a logger. An empty
// Filename logs to stderr; otherwise the file is rotated by lumberjack.
type Config struct {
	Level      string `toml:"level" json:"level"`
	Format     string `toml:"format" json:"format"`
	Filename   string `toml:"filename" json:"filename,omitempty"`
	MaxSize    int    `toml:"max-size" json:"max_size,omitempty"`
	MaxDays    int    `toml:"max-days" json:"max_days,omitempty"`
	MaxBackups int    `toml:"max-backups" json:"max_backups,omitempty"`
}

func Default() Config {
	return Config{
		Level:  "info",
		Format: FormatConsole,
	}
}

// Validate reports an unknown level or format.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}

	if c.Format != FormatConsole && c.Format != FormatJSON {
		return fmt.Errorf("unsupported log format: %q", c.Format)
	}

	if c.MaxSize < 0 || c.MaxDays < 0 || c.MaxBackups < 0 {
		return errors.New("log rotation limits must not be negative")
	}

	return nil
}

// New returns a logger for c. Call Sync on it before exiting.
func New(c Config) (*zap.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level, _ := c.level()
	core := zapcore.NewCore(c.encoder(), c.syncer(), zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}

func (c Config) level() (l zapcore.Level, err error) {
	if err = l.UnmarshalText([]byte(c.Level)); err != nil {
		err = fmt.Errorf("log level: %w", err)
	}

	return
}

func (c Config) encoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if c.Format == FormatJSON {
		return zapcore.NewJSONEncoder(cfg)
	}

	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func (c Config) syncer() zapcore.WriteSyncer {
	if c.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
		LocalTime:  true,
	})
}
