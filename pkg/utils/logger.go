package utils

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Logger for debug messages
var logger *zap.SugaredLogger

// Log prints debug messages to the log file if verbose mode is enabled
func Log(text string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(text, args...)
	}
}

// InitLogger initializes the logging system
func InitLogger(verbose bool) {
	if !verbose {
		return
	}

	// Log to a dated file under /tmp so the TUI screen stays clean
	logFileName := fmt.Sprintf("/tmp/ganttui_%s.log", time.Now().Format("2006-01-02"))

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{logFileName}
	cfg.ErrorOutputPaths = []string{logFileName}

	l, err := cfg.Build()
	if err != nil {
		fmt.Printf("Error creating log file: %v\n", err)
		return
	}

	logger = l.Sugar()
	Log("Verbose logging enabled")
}

// CloseLogger flushes and closes the logger if it's active
func CloseLogger() {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
}
