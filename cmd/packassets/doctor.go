package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	flag "github.com/spf13/pflag"

	packassets "github.com/alnah/go-packassets"
	"github.com/alnah/go-packassets/internal/hints"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string           `json:"status"`
	Instances []instanceReport `json:"instances"`
	Env       hostInfo         `json:"environment"`
	Warnings  []string         `json:"warnings,omitempty"`
	Errors    []string         `json:"errors,omitempty"`
}

// instanceReport holds the checks of one configured instance.
type instanceReport struct {
	Name             string   `json:"name"`
	Environment      string   `json:"environment,omitempty"`
	BaseURL          string   `json:"base_url,omitempty"`
	ManifestLocation string   `json:"manifest_location,omitempty"`
	ManifestLoaded   bool     `json:"manifest_loaded"`
	Entries          int      `json:"entries"`
	Missing          []string `json:"missing,omitempty"`
}

// hostInfo holds environment detection results.
type hostInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Container bool   `json:"container"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	f := &doctorFlags{}
	fs := buildDoctorFlagSet(f)
	if _, err := parseFlagSet(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	s, err := openSession(f.common, f.inst, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	names := s.cfg.InstanceNames()
	if selected := firstNonEmpty(f.inst.instance, s.env.Instance); selected != "" {
		names = []string{selected}
	}

	result := runDoctor(s, names)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor checks every named instance.
func runDoctor(s *session, names []string) *doctorResult {
	result := &doctorResult{
		Status:    statusReady,
		Instances: []instanceReport{},
		Env: hostInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Container: hints.IsInContainer(),
		},
	}

	for _, name := range names {
		checkInstance(s, name, result)
	}
	if len(names) == 0 {
		result.Errors = append(result.Errors, "no instances configured")
	}

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

// checkInstance builds one instance and checks its manifest covers every
// configured entry.
func checkInstance(s *session, name string, result *doctorResult) {
	report := instanceReport{Name: name}
	defer func() { result.Instances = append(result.Instances, report) }()

	inst, ic, err := s.open(name)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	r := inst.Resolver()
	report.Environment = r.Environment().String()
	report.BaseURL = r.BaseURL()
	report.ManifestLocation = r.ManifestLocation()
	report.ManifestLoaded = r.HasManifest()

	for _, phase := range []string{"frontend", "editor"} {
		pc, _ := ic.Phase(phase)
		if err := pc.Apply(r); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("instance %q: %v", name, err))
			return
		}
	}
	plan := r.Plan()
	report.Entries = len(plan)

	switch {
	case report.ManifestLocation == "":
		return
	case !report.ManifestLoaded:
		hint := hints.ForManifestUnavailable(report.ManifestLocation)
		if isTimeout(r.ManifestError()) {
			hint += hints.ForTimeout()
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("instance %q: manifest unavailable: %v%s", name, r.ManifestError(), hint))
		return
	}

	for _, a := range plan {
		fileType := packassets.FileTypeScript
		if a.Kind == packassets.KindStyle {
			fileType = packassets.FileTypeStyle
		}
		if !r.InManifest(a.Entry, fileType) {
			report.Missing = append(report.Missing, a.Entry+"."+fileType)
		}
	}
	if len(report.Missing) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("instance %q: %d entries not in manifest, conventional URLs used", name, len(report.Missing)))
	}
}

// isTimeout reports whether err was caused by a network timeout.
func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "packassets doctor")
	fmt.Fprintln(w)

	for _, inst := range r.Instances {
		fmt.Fprintf(w, "Instance %s\n", inst.Name)
		if inst.Environment == "" {
			fmt.Fprintln(w, "  [ERROR] Not registered")
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "  [OK] Environment: %s\n", inst.Environment)
		fmt.Fprintf(w, "  [OK] Base URL: %s\n", inst.BaseURL)
		switch {
		case inst.ManifestLocation == "":
			fmt.Fprintln(w, "  [OK] Manifest: none (conventional paths)")
		case inst.ManifestLoaded:
			fmt.Fprintf(w, "  [OK] Manifest: %s\n", inst.ManifestLocation)
		default:
			fmt.Fprintf(w, "  [WARN] Manifest: %s (unavailable)\n", inst.ManifestLocation)
		}
		fmt.Fprintf(w, "  [OK] Entries: %d\n", inst.Entries)
		for _, m := range inst.Missing {
			fmt.Fprintf(w, "  [WARN] Not in manifest: %s\n", m)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
