package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"aoc_solvers/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Logger = zap.NewNop().Sugar()

	rotators []*lumberjack.Logger
)

// InitLogger wires the global logger. Answers own stdout, so the console
// core writes to stderr and only exists in development.
func InitLogger(cfg *config.Config) error {
	level, err := zapcore.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.App.LogLevel, err)
	}
	if err := os.MkdirAll(cfg.Log.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	// Configure log rotation
	appLog := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Log.Dir, "app.log"),
		MaxSize:    cfg.Log.MaxSizeMB, // megabytes
		MaxAge:     cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}
	errorLog := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Log.Dir, "error.log"),
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxAge:     cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.StacktraceKey = "stacktrace"
	encCfg.CallerKey = "caller"

	jsonEncoder := zapcore.NewJSONEncoder(encCfg)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel && lvl >= level
	})
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && lvl >= level
	})

	cores := []zapcore.Core{
		zapcore.NewCore(jsonEncoder, zapcore.AddSync(errorLog), highPriority),
		zapcore.NewCore(jsonEncoder, zapcore.AddSync(appLog), lowPriority),
	}
	if cfg.IsDevelopment() {
		cores = append(cores, zapcore.NewCore(jsonEncoder, zapcore.Lock(os.Stderr), level))
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	Logger = logger.Sugar()
	rotators = []*lumberjack.Logger{appLog, errorLog}
	return nil
}

// CloseLogger flushes buffered entries, closes the rotating files and puts
// the no-op logger back.
func CloseLogger() {
	_ = Logger.Sync()
	for _, r := range rotators {
		_ = r.Close()
	}
	rotators = nil
	Logger = zap.NewNop().Sugar()
}

// Error logs an error with stack trace, attributed to the caller.
func Error(err error, msg string, fields ...interface{}) {
	Logger.WithOptions(zap.AddCallerSkip(1)).Errorw(msg,
		append([]interface{}{
			"error", err,
			"stack", fmt.Sprintf("%+v", err),
		}, fields...)...,
	)
}
