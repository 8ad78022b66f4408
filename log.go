package main

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the logger for the whole program. It discards everything until
// InitLogger is called, which keeps tests quiet.
var Log = zap.NewNop().Sugar()

// InitLogger sends logs to logWriter(filename), which is a rotating file on
// desktop and the browser console in wasm. level is a zap level name like
// "debug" or "info".
func InitLogger(filename string, level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		Check(fmt.Errorf("invalid log level %q: %w", level, err))
		lvl = zapcore.InfoLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg),
		logWriter(filename), lvl)
	Log = zap.New(core, zap.AddCaller()).Sugar()
}

func SyncLogger() {
	_ = Log.Sync()
}
