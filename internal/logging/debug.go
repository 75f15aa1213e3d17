package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	forced bool
)

// DebugEnabled returns true if debug mode is enabled via MONET_DEBUG environment variable
// or SetDebug
func DebugEnabled() bool {
	mu.Lock()
	on := forced
	mu.Unlock()
	return on || os.Getenv("MONET_DEBUG") != ""
}

// SetDebug turns debug output on regardless of MONET_DEBUG.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	forced = enabled
}

// SetOutput redirects debug and warning output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		write(fmt.Sprintf(format, args...))
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		write(fmt.Sprintln(args...))
	}
}

// Warnf prints a warning. Warnings are always written; they report data that
// was dropped or state that was reset and must never be silent.
func Warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	write("Warning: " + msg)
}

func write(s string) {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return
	}
	io.WriteString(output, s)
}
