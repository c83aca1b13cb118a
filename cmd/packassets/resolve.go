package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	packassets "github.com/alnah/go-packassets"
)

// runResolve handles the resolve command: prints the URL of one entry or static file.
func runResolve(args []string, env *Environment) error {
	f := &resolveFlags{}
	fs := buildResolveFlagSet(f)
	positional, err := parseFlagSet(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printResolveUsage(env.Stdout)
			return nil
		}
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: resolve takes exactly one entry name", ErrUsage)
	}
	if !f.static && f.fileType != packassets.FileTypeScript && f.fileType != packassets.FileTypeStyle {
		return fmt.Errorf("%w: --type must be js or css, got %q", ErrUsage, f.fileType)
	}

	s, err := openSession(f.common, f.inst, env)
	if err != nil {
		return err
	}
	inst, _, err := s.open(s.instanceName())
	if err != nil {
		return err
	}

	r := inst.Resolver()
	var url string
	switch {
	case f.static:
		url = inst.StaticAssetURL(positional[0])
	case f.fileType == packassets.FileTypeStyle:
		url = r.StyleURL(positional[0])
	default:
		url = r.ScriptURL(positional[0])
	}
	fmt.Fprintln(env.Stdout, url)
	return nil
}
