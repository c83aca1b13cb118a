package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns the process environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// newLogger returns the CLI logger writing to w.
// Quiet keeps errors only; verbose adds debug output.
func newLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "packassets",
		Level:  log.WarnLevel,
	})
	switch {
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	case verbose:
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
