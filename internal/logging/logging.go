// Package logging builds the zap logger used by the qosroute binaries and
// a routing.Observer that logs every solved query.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/qosroute/config"
	"github.com/katalvlaran/qosroute/routing"
)

// New returns a logger writing to stderr and, when cfg.File is set, to a
// size-rotated file.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg config.LogConfig, console io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	atom := zap.NewAtomicLevelAt(level)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Encoding), zapcore.AddSync(console), atom),
	}
	if cfg.File != "" {
		fw, err := fileWriter(cfg)
		if err != nil {
			return nil, err
		}
		// Files are always JSON so they can be shipped as is.
		cores = append(cores, zapcore.NewCore(encoder("json"), fw, atom))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func encoder(kind string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder
	if kind == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// fileWriter opens a lumberjack rotating writer, creating the directory.
func fileWriter(cfg config.LogConfig) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log dir: %w", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}), nil
}

// Observer logs each routing event at info level, or warn when no path was found.
type Observer struct {
	log *zap.Logger
}

// NewObserver wraps log.
func NewObserver(log *zap.Logger) *Observer {
	return &Observer{log: log.Named("routing")}
}

// Observe implements routing.Observer.
func (o *Observer) Observe(e routing.Event) {
	fields := []zap.Field{
		zap.String("run_id", e.Result.RunID),
		zap.Stringer("algorithm", e.Request.Algorithm),
		zap.Int("source", e.Request.Source),
		zap.Int("destination", e.Request.Destination),
		zap.Float64("demand", e.Request.Demand),
		zap.Stringer("status", e.Result.Status),
		zap.Duration("elapsed", e.Elapsed.Round(time.Microsecond)),
	}
	if e.Result.Found() {
		o.log.Info("path found", append(fields,
			zap.Ints("path", e.Result.Path),
			zap.Float64("total_cost", e.Result.Breakdown.TotalCost))...)
		return
	}
	o.log.Warn("no complete path", append(fields,
		zap.Bool("short_circuited", e.ShortCircuited),
		zap.String("note", e.Result.Note))...)
}
