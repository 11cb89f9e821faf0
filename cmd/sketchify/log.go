package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/sketchify/utils"
	"golang.org/x/term"
)

// newLogger creates a new logger writing to w, with timestamps formatted
// as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// startSpinner shows the progress indicator on w if w is a terminal. The
// returned function stops it, printing the outcome.
func startSpinner(w io.Writer, msg string) (stop func(ok bool)) {
	f, isFile := w.(*os.File)
	if !isFile || !isTerminal(f) {
		return func(bool) {}
	}

	spinner := utils.NewSpinner(w, utils.StatusLine("✎ SKETCHIFY", msg, utils.DefaultMessage), 80*time.Millisecond, true)
	spinner.Start()

	return func(ok bool) {
		if ok {
			spinner.StopMsg = utils.StatusLine("✎ SKETCHIFY", msg+" ✔\n", utils.SuccessMessage)
		} else {
			spinner.StopMsg = utils.StatusLine("✎ SKETCHIFY", msg+" ✘\n", utils.ErrorMessage)
		}
		spinner.Stop()
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
