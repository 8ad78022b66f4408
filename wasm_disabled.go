//go:build !(js && wasm)

package main

import (
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
)

func getUsername() string {
	return "dev"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

// logWriter rotates the log file at 10MB and keeps 3 old files for a week.
func logWriter(filename string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	})
}

// exposeDispose does nothing on desktop, closing the window ends the game.
func exposeDispose(g *Gui) {
}
