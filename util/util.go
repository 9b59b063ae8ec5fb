package util

import (
	"os"
	"runtime"
	"strings"
)

var goexit = runtime.Goexit

// ExitCode holds the code passed to the last Exit call.
var ExitCode int

// Exit records code and terminates the calling goroutine after running its
// deferred calls.
func Exit(code int) {
	ExitCode = code
	goexit()
}

var lookupEnv = os.LookupEnv

func Getenv(name string) (string, bool) {
	return lookupEnv(name)
}

// IsTruthy reports whether s is a non-empty value other than "0" or "false".
func IsTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
