package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	packassets "github.com/alnah/go-packassets"
	"github.com/alnah/go-packassets/host"
)

// plannedAsset is one emitted enqueue call, as printed by plan.
type plannedAsset struct {
	Kind         string   `json:"kind"`
	Handle       string   `json:"handle"`
	URL          string   `json:"url"`
	Dependencies []string `json:"dependencies"`
	Version      string   `json:"version,omitempty"`
	InFooter     bool     `json:"in_footer,omitempty"`
}

// planResult is the JSON shape of the plan command.
type planResult struct {
	Instance    string         `json:"instance"`
	Phase       string         `json:"phase"`
	Environment string         `json:"environment"`
	Assets      []plannedAsset `json:"assets"`
}

// planSink records emitted assets in order.
type planSink struct {
	assets    []plannedAsset
	activated map[string]bool
}

func (s *planSink) EnqueueScript(a packassets.Asset) { s.assets = append(s.assets, toPlanned(a)) }
func (s *planSink) RegisterStyle(a packassets.Asset) { s.assets = append(s.assets, toPlanned(a)) }
func (s *planSink) EnqueueStyle(handle string)       { s.activated[handle] = true }

func toPlanned(a packassets.Asset) plannedAsset {
	return plannedAsset{
		Kind:         a.Kind.String(),
		Handle:       a.Handle,
		URL:          a.URL,
		Dependencies: a.Dependencies,
		Version:      a.Version,
		InFooter:     a.InFooter,
	}
}

// runPlan handles the plan command.
func runPlan(args []string, env *Environment) error {
	f := &planFlags{}
	fs := buildPlanFlagSet(f)
	if _, err := parseFlagSet(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printPlanUsage(env.Stdout)
			return nil
		}
		return err
	}

	phase := host.Phase(f.phase)
	if phase != host.PhaseFrontend && phase != host.PhaseEditor {
		return fmt.Errorf("%w: --phase must be frontend or editor, got %q", ErrUsage, f.phase)
	}

	s, err := openSession(f.common, f.inst, env)
	if err != nil {
		return err
	}
	name := s.instanceName()
	inst, ic, err := s.open(name)
	if err != nil {
		return err
	}
	phaseCfg, err := ic.Phase(f.phase)
	if err != nil {
		return err
	}

	queue := host.NewActionQueue()
	sink := &planSink{activated: map[string]bool{}}
	var applyErr error
	enqueue := func(i *host.Instance) {
		if applyErr = phaseCfg.Apply(i.Resolver()); applyErr != nil {
			return
		}
		i.Enqueue(sink)
	}
	if phase == host.PhaseFrontend {
		inst.RegisterFrontend(queue, enqueue)
	} else {
		inst.RegisterEditor(queue, enqueue)
	}
	queue.Run(phase)
	if applyErr != nil {
		return applyErr
	}

	for _, a := range sink.assets {
		if a.Kind == packassets.KindStyle.String() && !sink.activated[a.Handle] {
			s.logger.Warn("style registered but not enqueued", "handle", a.Handle)
		}
	}

	result := planResult{
		Instance:    name,
		Phase:       f.phase,
		Environment: inst.Resolver().Environment().String(),
		Assets:      sink.assets,
	}
	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printPlan(env.Stdout, result, f.common.quiet)
	return nil
}

// printPlan writes one asset per line in enqueue order.
func printPlan(w io.Writer, r planResult, quiet bool) {
	if !quiet {
		fmt.Fprintf(w, "%s (%s, %s): %d assets\n", r.Instance, r.Phase, r.Environment, len(r.Assets))
	}
	for i, a := range r.Assets {
		footer := ""
		if a.InFooter {
			footer = " footer"
		}
		version := ""
		if a.Version != "" {
			version = " ver=" + a.Version
		}
		fmt.Fprintf(w, "%2d. %-6s %s %s deps=[%s]%s%s\n",
			i+1, a.Kind, a.Handle, a.URL, strings.Join(a.Dependencies, ","), version, footer)
	}
}
