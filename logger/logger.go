package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.SugaredLogger

// Config represents configuration options for logger initialization
type Config struct {
	Debug     bool   // Enable debug logging
	LogToFile bool   // Additionally write JSON lines into LogsDir
	LogsDir   string // Relative to the working directory
}

func Init(config Config) error {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if config.Debug {
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), level),
	}

	if config.LogToFile {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		logsPath := filepath.Join(wd, config.LogsDir)
		if err := os.MkdirAll(logsPath, os.ModePerm); err != nil {
			return err
		}
		path := filepath.Join(logsPath, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(file), level))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named("main").Sugar()
	return nil
}

// Named returns a child logger ("review", "score", ...). Before Init it
// returns a no-op logger so packages stay usable in tests.
func Named(name string) *zap.SugaredLogger {
	if Log == nil {
		return zap.NewNop().Sugar().Named(name)
	}
	return Log.Named(name)
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
