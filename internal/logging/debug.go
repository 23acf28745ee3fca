package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	verbose atomic.Bool
	output  io.Writer = os.Stderr
)

// DebugEnabled returns true if debug output is on, either through the
// TB_DEBUG environment variable or the --verbose flag.
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TB_DEBUG") != ""
}

// SetVerbose turns debug output on or off for the rest of the process.
func SetVerbose(on bool) {
	verbose.Store(on)
}

// SetOutput redirects log output. It returns the previous writer so tests can restore it.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, "debug: "+format+"\n", args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, append([]interface{}{"debug:"}, args...)...)
	}
}

// Warnf always prints. Used for degraded but recoverable states such as a
// corrupt stored value or a failed write.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(output, "warning: "+format+"\n", args...)
}
