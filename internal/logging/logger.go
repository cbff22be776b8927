// Package logging wraps log/slog with sortlab-specific helpers so every
// component logs with the same field names.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with sortlab-specific context.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w in the given format ("text" or "json").
// A nil w defaults to stderr.
func New(w io.Writer, format string, level slog.Level) (*Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	return &Logger{Logger: slog.New(h)}, nil
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))}
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: %w", err)
	}
	return l, nil
}

// WithMethod adds the algorithm name field.
func (l *Logger) WithMethod(name string) *Logger {
	return &Logger{Logger: l.Logger.With("method", name)}
}

// LogGenerate logs a sequence (re)generation.
func (l *Logger) LogGenerate(ctx context.Context, mode string, size int, duplicates bool, err error) {
	if err != nil {
		l.WarnContext(ctx, "generate rejected",
			"mode", mode,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "sequence generated",
		"mode", mode,
		"size", size,
		"duplicates", duplicates,
	)
}

// LogSort logs a completed sort. Call it on a WithMethod logger.
func (l *Logger) LogSort(ctx context.Context, size, comparisons, swaps int) {
	l.DebugContext(ctx, "sort completed",
		"size", size,
		"comparisons", comparisons,
		"swaps", swaps,
	)
}

// LogSearch logs a completed search. Call it on a WithMethod logger.
func (l *Logger) LogSearch(ctx context.Context, target, index, comparisons int) {
	l.DebugContext(ctx, "search completed",
		"target", target,
		"index", index,
		"found", index >= 0,
		"comparisons", comparisons,
	)
}

// LogInvalidChoice logs a rejected menu or method selection.
func (l *Logger) LogInvalidChoice(ctx context.Context, menu string, choice int) {
	l.WarnContext(ctx, "invalid selection",
		"menu", menu,
		"choice", choice,
	)
}
