package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init initializes the logger. A non-empty level overrides the debug flag.
func Init(debug, noColor bool, level string) {
	log.SetDefault(log.NewWithOptions(io.MultiWriter(os.Stderr),
		log.Options{
			ReportCaller:    true,
			ReportTimestamp: false,
			TimeFormat:      time.RFC3339,
			Prefix:          "TACGEN",
		}))

	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			log.Warn("Ignoring invalid log level", "level", level, "error", err)
		} else {
			log.SetLevel(lvl)
		}
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
