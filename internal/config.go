package internal

import (
	"log/slog"
	"strings"
	"sync/atomic"
)

// Selects how much diagnostic output the tool produces.
type Verbosity int32

const (
	VerbosityNormal  Verbosity = iota // Step progress at info level.
	VerbosityQuiet                    // Warnings and errors only.
	VerbosityVerbose                  // Info level, with command lines echoed.
	VerbosityDebug                    // Everything, including file operations.
)

// Current verbosity, seeded from linker flags and overridden by CLI flags.
var verbosity atomic.Int32

// Parses the rawVerbosity linker flag.
//
// Unknown values leave the default (normal) in place.
func init() {
	if v, ok := ParseVerbosity(rawVerbosity); ok {
		verbosity.Store(int32(v))
	}
}

// Parses a verbosity name ("normal", "quiet", "verbose", "debug").
func ParseVerbosity(s string) (Verbosity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return VerbosityNormal, true
	case "quiet":
		return VerbosityQuiet, true
	case "verbose":
		return VerbosityVerbose, true
	case "debug":
		return VerbosityDebug, true
	}
	return VerbosityNormal, false
}

// Sets the process-wide verbosity.
func SetVerbosity(v Verbosity) {
	verbosity.Store(int32(v))
}

// Returns the process-wide verbosity.
func CurrentVerbosity() Verbosity {
	return Verbosity(verbosity.Load())
}

// Returns the slog level matching the current verbosity.
func LogLevel() slog.Level {
	switch CurrentVerbosity() {
	case VerbosityDebug:
		return slog.LevelDebug
	case VerbosityQuiet:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
