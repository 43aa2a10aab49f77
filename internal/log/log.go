// Package log provides a logging abstraction for the codec.
//
// Both loggers are nil-backed (silent) until a caller wires a concrete
// Logger, so the codec's Debug/Stats calls cost a nil check when undriven.
package log

import (
	"log"
	"os"
)

// Logger defines an interface for logging messages.
type Logger interface {

	// Printf logs a formatted string.
	Printf(format string, args ...interface{})

	// Println logs a line.
	Println(args ...interface{})
}

type logger struct {
	log Logger
}

// The codec's 2 defined loggers.
var (
	// Debug logs CLEARs and width bumps during encode/decode.
	Debug = &logger{}

	// Stats logs one summary line at the end of a completed Encode call.
	Stats = &logger{}
)

// SetDebugLogger sets the debug logger.
func SetDebugLogger(l Logger) {
	Debug.log = l
}

// SetStatsLogger sets the stats logger.
func SetStatsLogger(l Logger) {
	Stats.log = l
}

// SetDefaultDebugLogger sets the default debug logger.
func SetDefaultDebugLogger() {
	SetDebugLogger(log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime))
}

// SetDefaultStatsLogger sets the default stats logger.
func SetDefaultStatsLogger() {
	SetStatsLogger(log.New(os.Stderr, "STATS: ", log.Ldate|log.Ltime))
}

// SetDefaultLoggers sets all loggers to their default logger.
func SetDefaultLoggers() {
	SetDefaultDebugLogger()
	SetDefaultStatsLogger()
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetStatsLogger(nil)
}

// Printf writes a formatted message to the log.
func (l *logger) Printf(format string, args ...interface{}) {

	if l.log == nil {
		return
	}

	l.log.Printf(format, args...)
}

// Println writes a line to the log.
func (l *logger) Println(args ...interface{}) {

	if l.log == nil {
		return
	}

	l.log.Println(args...)
}
