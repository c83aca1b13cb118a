package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// envReport describes how an instance resolves in the current environment.
type envReport struct {
	Instance         string `json:"instance"`
	Environment      string `json:"environment"`
	BaseURL          string `json:"base_url"`
	ProductionURL    string `json:"production_url"`
	DevelopmentURL   string `json:"development_url,omitempty"`
	ManifestLocation string `json:"manifest_location,omitempty"`
	ManifestLoaded   bool   `json:"manifest_loaded"`
	ManifestError    string `json:"manifest_error,omitempty"`
}

// runEnv handles the env command.
func runEnv(args []string, env *Environment) error {
	f := &envFlags{}
	fs := buildEnvFlagSet(f)
	if _, err := parseFlagSet(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printEnvUsage(env.Stdout)
			return nil
		}
		return err
	}

	s, err := openSession(f.common, f.inst, env)
	if err != nil {
		return err
	}
	name := s.instanceName()
	inst, _, err := s.open(name)
	if err != nil {
		return err
	}

	r := inst.Resolver()
	report := envReport{
		Instance:         name,
		Environment:      r.Environment().String(),
		BaseURL:          r.BaseURL(),
		ProductionURL:    inst.ProductionURL(),
		DevelopmentURL:   inst.DevelopmentURL(),
		ManifestLocation: r.ManifestLocation(),
		ManifestLoaded:   r.HasManifest(),
	}
	if err := r.ManifestError(); err != nil {
		report.ManifestError = err.Error()
	}

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printEnvReport(env.Stdout, report)
	return nil
}

func printEnvReport(w io.Writer, r envReport) {
	fmt.Fprintf(w, "Instance:        %s\n", r.Instance)
	fmt.Fprintf(w, "Environment:     %s\n", r.Environment)
	fmt.Fprintf(w, "Base URL:        %s\n", r.BaseURL)
	fmt.Fprintf(w, "Production URL:  %s\n", r.ProductionURL)
	if r.DevelopmentURL != "" {
		fmt.Fprintf(w, "Development URL: %s\n", r.DevelopmentURL)
	}
	switch {
	case r.ManifestLocation == "":
		fmt.Fprintln(w, "Manifest:        none (conventional paths)")
	case r.ManifestLoaded:
		fmt.Fprintf(w, "Manifest:        %s (loaded)\n", r.ManifestLocation)
	default:
		fmt.Fprintf(w, "Manifest:        %s (unavailable: %s)\n", r.ManifestLocation, r.ManifestError)
	}
}
