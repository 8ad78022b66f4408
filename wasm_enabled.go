//go:build js && wasm

package main

import (
	"go.uber.org/zap/zapcore"
	"os"
	"syscall/js"
)

func getUsername() string {
	// Retrieve parameter from JavaScript global scope.
	return js.Global().Get("username").String()
}

func WriteFile(name string, data []byte) {
}

// logWriter ignores filename, in the browser stdout is the developer console.
func logWriter(filename string) zapcore.WriteSyncer {
	return zapcore.AddSync(os.Stdout)
}

// exposeDispose lets the page that hosts the game unmount it by calling
// disposeTetris().
func exposeDispose(g *Gui) {
	js.Global().Set("disposeTetris", js.FuncOf(func(this js.Value, args []js.Value) any {
		g.Dispose()
		return nil
	}))
}
