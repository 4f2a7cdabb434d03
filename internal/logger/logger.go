package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color to stderr, so a failed run still
// reports its cause when stdout is piped.
var Error = func(format string, a ...any) {
	_, _ = color.New(color.FgRed).Fprintf(color.Error, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts as a no-op so packages can log before Init runs (tests, early config errors).
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// It is called from the root command's PersistentPreRun with the value of --debug.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
