package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-packassets/internal/config"
	"github.com/alnah/go-packassets/internal/fileutil"
	"github.com/alnah/go-packassets/internal/yamlutil"
)

// ErrWriteConfig indicates the starter config could not be written.
var ErrWriteConfig = errors.New("failed to write config")

// runInit handles the init command: writes a starter config.
func runInit(args []string, env *Environment) error {
	f := &initFlags{}
	fs := buildInitFlagSet(f)
	if _, err := parseFlagSet(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printInitUsage(env.Stdout)
			return nil
		}
		return err
	}

	data, err := yamlutil.Encode(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding starter config: %w", err)
	}

	if f.output == "" {
		_, err := env.Stdout.Write(data)
		return err
	}

	if fileutil.FileExists(f.output) && !f.force {
		return fmt.Errorf("%w: %s already exists (use --force to overwrite)", ErrUsage, f.output)
	}
	if err := os.WriteFile(f.output, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteConfig, err)
	}
	fmt.Fprintf(env.Stdout, "Wrote %s\n", f.output)
	return nil
}
