//go:build !assert_enabled

package main

func Assert(condition bool, format string, args ...any) {}
