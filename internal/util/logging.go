// Package util provides common utilities including logging helpers,
// data directory resolution and small numeric helpers.
package util

import (
	"fmt"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogEvent records a one-line timer event, e.g. a finished phase.
func LogEvent(kind string, format string, args ...interface{}) {
	log.Printf("[%s] %s", kind, fmt.Sprintf(format, args...))
}
