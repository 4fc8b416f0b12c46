package logger

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const prefix = "BLOCKLY"

// Init initializes the process logger. Verbose enables the per-line dispatch trace.
func Init(verbose, noColor bool) {
	log.SetDefault(log.NewWithOptions(os.Stderr,
		log.Options{
			ReportCaller:    verbose,
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          prefix,
		}))

	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}

// For returns a logger for one component, sharing the default logger's settings
func For(component string) *log.Logger {
	return log.Default().WithPrefix(prefix + "/" + component)
}
