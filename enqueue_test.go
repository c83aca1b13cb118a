package packassets

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"
)

// sinkRecorder captures every sink call as a line of text.
type sinkRecorder struct {
	calls  []string
	assets []Asset
}

func (s *sinkRecorder) EnqueueScript(a Asset) {
	s.assets = append(s.assets, a)
	s.calls = append(s.calls, fmt.Sprintf("script %s %v footer=%v", a.Handle, a.Dependencies, a.InFooter))
}

func (s *sinkRecorder) RegisterStyle(a Asset) {
	s.assets = append(s.assets, a)
	s.calls = append(s.calls, fmt.Sprintf("style %s %v", a.Handle, a.Dependencies))
}

func (s *sinkRecorder) EnqueueStyle(handle string) {
	s.calls = append(s.calls, "activate "+handle)
}

func depsByEntry(plan []Asset) map[string][]string {
	out := make(map[string][]string, len(plan))
	for _, a := range plan {
		out[a.Kind.String()+":"+a.Entry] = a.Dependencies
	}
	return out
}

// ---------------------------------------------------------------------------
// TestPlan - Dependency chaining
// ---------------------------------------------------------------------------

func TestPlan_ScriptChain(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com", WithConfiguration(NewConfiguration(WithHandlePrefix("p-"))))
	r.RegisterVendorScript("a")
	r.RegisterVendorScript("b")
	r.RegisterRuntimeScript("r")
	r.RegisterScript("x")

	plan := r.Plan()
	got := make([]string, 0, len(plan))
	for _, a := range plan {
		got = append(got, fmt.Sprintf("%s:%v", a.Entry, a.Dependencies))
	}
	want := []string{"a:[]", "b:[p-a]", "r:[p-b]", "x:[p-r]"}
	if !slices.Equal(got, want) {
		t.Errorf("chain = %v, want %v", got, want)
	}
}

func TestPlan_ApplicationsDoNotChainToSiblings(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com")
	r.RegisterVendorScript("vendor")
	r.RegisterVendorStyle("vendor-css")
	r.RegisterScript("one", "wp-element")
	r.RegisterScript("two")
	r.RegisterStyle("one")
	r.RegisterStyle("two")

	deps := depsByEntry(r.Plan())
	checks := map[string][]string{
		"script:vendor":    {},
		"style:vendor-css": {},
		"script:one":       {"wp-element", "kanopi-pack-vendor"},
		"script:two":       {"kanopi-pack-vendor"},
		"style:one":        {"kanopi-pack-vendor-css"},
		"style:two":        {"kanopi-pack-vendor-css"},
	}
	for key, want := range checks {
		if !slices.Equal(deps[key], want) {
			t.Errorf("%s deps = %v, want %v", key, deps[key], want)
		}
	}
}

func TestPlan_ProductionVendorStylesChain(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com")
	r.RegisterVendorScript("js")
	r.RegisterVendorStyle("first")
	r.RegisterVendorStyle("second", "dashicons")

	deps := depsByEntry(r.Plan())
	if len(deps["style:first"]) != 0 {
		t.Errorf("first vendor style deps = %v, want empty", deps["style:first"])
	}
	if want := []string{"dashicons", "kanopi-pack-first"}; !slices.Equal(deps["style:second"], want) {
		t.Errorf("second vendor style deps = %v, want %v", deps["style:second"], want)
	}
}

func TestPlan_DevelopmentStylesAreScripts(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com", WithDevelopmentURL("https://localhost:4400"))
	r.RegisterVendorScript("vendor")
	r.RegisterRuntimeScript("runtime")
	r.RegisterVendorStyle("vendor-css")
	r.RegisterStyle("theme")

	plan := r.Plan()
	for _, a := range plan {
		if a.Kind != KindScript {
			t.Errorf("%s kind = %v, want script in development", a.Entry, a.Kind)
		}
		if !a.InFooter {
			t.Errorf("%s InFooter = false, want true", a.Entry)
		}
	}

	deps := depsByEntry(plan)
	if want := []string{"kanopi-pack-runtime"}; !slices.Equal(deps["script:vendor-css"], want) {
		t.Errorf("vendor-css deps = %v, want %v", deps["script:vendor-css"], want)
	}
	if want := []string{"kanopi-pack-vendor-css"}; !slices.Equal(deps["script:theme"], want) {
		t.Errorf("theme deps = %v, want %v", deps["script:theme"], want)
	}
	if got, want := plan[2].URL, "https://localhost:4400/assets/dist/js/vendor-css.js"; got != want {
		t.Errorf("vendor-css URL = %q, want %q", got, want)
	}
}

func TestPlan_DevelopmentStylesInHead(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com",
		WithDevelopmentURL("https://localhost:4400"),
		WithConfiguration(NewConfiguration(WithDevelopmentStylesInHead(true))),
	)
	r.RegisterScript("app")
	r.RegisterStyle("app-css")

	for _, a := range r.Plan() {
		wantFooter := a.Entry == "app"
		if a.InFooter != wantFooter {
			t.Errorf("%s InFooter = %v, want %v", a.Entry, a.InFooter, wantFooter)
		}
	}
}

func TestPlan_AssetFields(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com", WithConfiguration(NewConfiguration(WithVersion("2.0"))))
	r.RegisterStyle("app")

	plan := r.Plan()
	want := Asset{
		Kind:         KindStyle,
		Entry:        "app",
		Handle:       "kanopi-pack-app",
		URL:          "https://example.com/assets/dist/css/app.css",
		Dependencies: []string{},
		Version:      "2.0",
	}
	if len(plan) != 1 || !reflect.DeepEqual(plan[0], want) {
		t.Errorf("Plan() = %+v, want [%+v]", plan, want)
	}
}

func TestPlan_Empty(t *testing.T) {
	t.Parallel()

	if plan := mustResolver(t, "https://example.com").Plan(); len(plan) != 0 {
		t.Errorf("Plan() = %v, want empty", plan)
	}
}

// ---------------------------------------------------------------------------
// TestEnqueueAll - Sink protocol
// ---------------------------------------------------------------------------

func TestEnqueueAll_SinkCalls(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com")
	r.RegisterVendorScript("vendor")
	r.RegisterApplication("app")

	sink := &sinkRecorder{}
	r.EnqueueAll(sink)

	want := []string{
		"script kanopi-pack-vendor [] footer=true",
		"script kanopi-pack-app [kanopi-pack-vendor] footer=true",
		"style kanopi-pack-app []",
		"activate kanopi-pack-app",
	}
	if !slices.Equal(sink.calls, want) {
		t.Errorf("calls:\n%s\nwant:\n%s", strings.Join(sink.calls, "\n"), strings.Join(want, "\n"))
	}
}

func TestEnqueueAll_Deterministic(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com")
	r.RegisterVendorScript("a")
	r.RegisterVendorScript("b", "lodash")
	r.RegisterRuntimeScript("runtime")
	r.RegisterVendorStyle("v")
	r.RegisterApplication("x")
	r.RegisterApplication("y", "wp-i18n")

	first, second := &sinkRecorder{}, &sinkRecorder{}
	r.EnqueueAll(first)
	r.EnqueueAll(second)

	if !slices.Equal(first.calls, second.calls) {
		t.Errorf("second pass differs:\n%v\n%v", first.calls, second.calls)
	}
	if !reflect.DeepEqual(first.assets, second.assets) {
		t.Error("second pass emitted different assets")
	}
}

func TestEnqueueAll_SinkFuncs(t *testing.T) {
	t.Parallel()

	r := mustResolver(t, "https://example.com")
	r.RegisterScript("app")
	r.RegisterStyle("app")

	var scripts, styles []string
	r.EnqueueAll(SinkFuncs{
		Script: func(a Asset) { scripts = append(scripts, a.Handle) },
		Style:  func(a Asset) { styles = append(styles, a.Handle) },
	})
	if len(scripts) != 1 || len(styles) != 1 {
		t.Errorf("scripts = %v, styles = %v", scripts, styles)
	}
}

func TestChained(t *testing.T) {
	t.Parallel()

	deps := []string{"a"}
	got := chained(deps, "b")
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("chained() = %v", got)
	}
	got[0] = "z"
	if deps[0] != "a" {
		t.Error("chained() aliased its input")
	}
	if got := chained(nil, ""); got == nil || len(got) != 0 {
		t.Errorf("chained(nil, \"\") = %#v, want empty non-nil", got)
	}
}
