package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for command-line handling.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// defaultTimeout bounds a network manifest fetch when neither flag nor env sets one.
const defaultTimeout = 5 * time.Second

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// instanceFlags selects and overrides the instance a command works on.
type instanceFlags struct {
	instance       string
	developmentURL string
	filePath       string
	timeout        string
}

// planFlags holds flags for the plan command.
type planFlags struct {
	common commonFlags
	inst   instanceFlags
	phase  string
	json   bool
}

// resolveFlags holds flags for the resolve command.
type resolveFlags struct {
	common   commonFlags
	inst     instanceFlags
	fileType string
	static   bool
}

// envFlags holds flags for the env command.
type envFlags struct {
	common commonFlags
	inst   instanceFlags
	json   bool
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	inst   instanceFlags
	json   bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	output string
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addInstanceFlags adds instance selection flags to a FlagSet.
func addInstanceFlags(fs *flag.FlagSet, f *instanceFlags) {
	fs.StringVarP(&f.instance, "instance", "i", "", "instance name (default \"theme\")")
	fs.StringVar(&f.developmentURL, "development-url", "", "development server base URL")
	fs.StringVar(&f.filePath, "production-file-path", "", "disk root for the production manifest when the config has none")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "manifest fetch timeout (e.g., 2s, 500ms)")
}

func buildPlanFlagSet(f *planFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addInstanceFlags(fs, &f.inst)
	fs.StringVarP(&f.phase, "phase", "p", "frontend", "host phase: frontend, editor")
	fs.BoolVar(&f.json, "json", false, "output JSON")
	return fs
}

func buildResolveFlagSet(f *resolveFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addInstanceFlags(fs, &f.inst)
	fs.StringVar(&f.fileType, "type", "js", "file type: js, css")
	fs.BoolVar(&f.static, "static", false, "treat the argument as a static file path")
	return fs
}

func buildEnvFlagSet(f *envFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("env", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addInstanceFlags(fs, &f.inst)
	fs.BoolVar(&f.json, "json", false, "output JSON")
	return fs
}

func buildDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addInstanceFlags(fs, &f.inst)
	fs.BoolVar(&f.json, "json", false, "output JSON")
	return fs
}

func buildInitFlagSet(f *initFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "write the config to a file instead of stdout")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")
	return fs
}

// parseFlagSet parses args with fs and wraps parse failures in ErrUsage.
// flag.ErrHelp is returned unwrapped so callers can print usage.
func parseFlagSet(fs *flag.FlagSet, args []string) ([]string, error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// resolveTimeout picks the manifest timeout: flag, then PACKASSETS_TIMEOUT, then default.
func resolveTimeout(flagValue string, env *envConfig) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q: must be positive", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if env != nil && env.Timeout > 0 {
		return env.Timeout, nil
	}
	return defaultTimeout, nil
}
