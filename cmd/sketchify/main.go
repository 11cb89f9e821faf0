package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

const HelpBanner = `
┌─┐┬┌─┌─┐┌┬┐┌─┐┬ ┬┬┌─┐┬ ┬
└─┐├┴┐├┤  │ │  ├─┤│├┤ └┬┘
└─┘┴ ┴└─┘ ┴ └─┘┴ ┴┴└   ┴

Photo to pencil sketch converter and animator.
    Version: %s
`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		newLogger(os.Stderr, log.InfoLevel).Error(err)
		os.Exit(1)
	}
}
