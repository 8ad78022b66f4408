//go:build assert_enabled

package main

import "fmt"

// Assert checks invariants of the World. It only does something in builds
// with the assert_enabled tag, the released game skips these checks.
func Assert(condition bool, format string, args ...any) {
	if !condition {
		Check(fmt.Errorf("assert failed: "+format, args...))
	}
}
