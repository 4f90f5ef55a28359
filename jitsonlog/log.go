// Package jitsonlog provides the structured logger jitsonctl and any
// long-running document-serving code built on jitson should use.
//
// No third-party logging library appears anywhere in the retrieved
// corpus (every example repo either logs through the standard library
// or doesn't log at all), so this wraps log/slog directly rather than
// importing an unrelated ecosystem package just to have one.
package jitsonlog

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON-structured logger writing to w (os.Stderr if w is
// nil), at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Default is a package-level logger writing JSON to os.Stderr at info
// level, for callers that have no logger of their own.
var Default = New(os.Stderr, slog.LevelInfo)
