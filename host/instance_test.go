package host

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	packassets "github.com/alnah/go-packassets"
)

func noEnv(string) string { return "" }

// recordingSink collects handles in emission order.
type recordingSink struct {
	handles []string
}

func (s *recordingSink) EnqueueScript(a packassets.Asset) { s.handles = append(s.handles, a.Handle) }
func (s *recordingSink) RegisterStyle(a packassets.Asset) { s.handles = append(s.handles, a.Handle) }
func (s *recordingSink) EnqueueStyle(string)              {}

// ---------------------------------------------------------------------------
// TestNewInstance - Construction
// ---------------------------------------------------------------------------

func TestNewInstance_MissingProductionURL(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inst := NewInstance(packassets.DefaultConfiguration(),
		WithLogger(log.New(&buf)),
		withGetenv(noEnv),
	)

	if inst.Resolver() != nil {
		t.Error("Resolver() should be nil without a production URL")
	}
	if !errors.Is(inst.Err(), packassets.ErrBaseURLRequired) {
		t.Errorf("Err() = %v, want ErrBaseURLRequired", inst.Err())
	}
	if strings.Count(buf.String(), "asset loader not registered") != 1 {
		t.Errorf("expected one error log line, got %q", buf.String())
	}
	if got := inst.StaticAssetURL("logo.svg"); got != "" {
		t.Errorf("StaticAssetURL() = %q, want empty", got)
	}

	// Enqueue without a resolver is a no-op.
	sink := &recordingSink{}
	inst.Enqueue(sink)
	if len(sink.handles) != 0 {
		t.Errorf("Enqueue() emitted %v, want nothing", sink.handles)
	}
}

func TestNewInstance_DevelopmentURLFromEnv(t *testing.T) {
	t.Parallel()

	getenv := func(key string) string {
		if key == DevelopmentURLEnv {
			return " https://localhost:4400 "
		}
		return ""
	}
	inst := NewInstance(packassets.DefaultConfiguration(),
		WithProductionURL("https://example.com"),
		withGetenv(getenv),
	)

	if inst.DevelopmentURL() != "https://localhost:4400" {
		t.Errorf("DevelopmentURL() = %q", inst.DevelopmentURL())
	}
	if !inst.Resolver().InDevelopmentMode() {
		t.Error("expected development mode")
	}
	if got, want := inst.StaticAssetURL("logo.svg"), "https://localhost:4400/assets/dist/static/logo.svg"; got != want {
		t.Errorf("StaticAssetURL() = %q, want %q", got, want)
	}
}

func TestNewInstance_ExplicitDevelopmentURLWins(t *testing.T) {
	t.Parallel()

	inst := NewInstance(packassets.DefaultConfiguration(),
		WithProductionURL("https://example.com"),
		WithDevelopmentURL("https://dev.local"),
		withGetenv(func(string) string { return "https://ignored" }),
	)
	if inst.DevelopmentURL() != "https://dev.local" {
		t.Errorf("DevelopmentURL() = %q, want https://dev.local", inst.DevelopmentURL())
	}
}

func TestNewInstance_DefaultFilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := `{"app":{"js":["js/app.abc.js"]}}`
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(manifest), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := packassets.NewConfiguration(packassets.WithManifestPath("manifest.json"))
	inst := NewInstance(cfg,
		WithProductionURL("https://example.com"),
		WithDefaultFilePath(dir),
		withGetenv(noEnv),
	)

	if inst.Configuration().ProductionFilePath() != dir {
		t.Errorf("ProductionFilePath() = %q, want %q", inst.Configuration().ProductionFilePath(), dir)
	}
	if cfg.ProductionFilePath() != "" {
		t.Error("caller configuration was modified")
	}
	if !inst.Resolver().HasManifest() {
		t.Fatalf("manifest not loaded: %v", inst.Resolver().ManifestError())
	}
	if got, want := inst.Resolver().ScriptURL("app"), "https://example.com/assets/dist/js/app.abc.js"; got != want {
		t.Errorf("ScriptURL() = %q, want %q", got, want)
	}
}

func TestNewInstance_ConfiguredFilePathKept(t *testing.T) {
	t.Parallel()

	cfg := packassets.NewConfiguration(packassets.WithProductionFilePath("/srv/theme"))
	inst := NewInstance(cfg,
		WithProductionURL("https://example.com"),
		WithDefaultFilePath("/other"),
		withGetenv(noEnv),
	)
	if inst.Configuration().ProductionFilePath() != "/srv/theme" {
		t.Errorf("ProductionFilePath() = %q, want /srv/theme", inst.Configuration().ProductionFilePath())
	}
}

// ---------------------------------------------------------------------------
// TestInstance_Phases - Hook registration and priorities
// ---------------------------------------------------------------------------

func TestInstance_RegisterFrontend(t *testing.T) {
	t.Parallel()

	inst := NewInstance(packassets.DefaultConfiguration(),
		WithProductionURL("https://example.com"),
		withGetenv(noEnv),
	)
	q := NewActionQueue()
	sink := &recordingSink{}

	inst.RegisterFrontend(q, func(i *Instance) {
		i.Resolver().RegisterVendorScript("vendor")
		i.Resolver().RegisterApplication("app")
		i.Enqueue(sink)
	})

	if q.Len(PhaseEditor) != 0 {
		t.Error("frontend callback scheduled on editor phase")
	}
	q.Run(PhaseFrontend)

	want := []string{"kanopi-pack-vendor", "kanopi-pack-app", "kanopi-pack-app"}
	if strings.Join(sink.handles, ",") != strings.Join(want, ",") {
		t.Errorf("handles = %v, want %v", sink.handles, want)
	}
}

func TestInstance_Priorities(t *testing.T) {
	t.Parallel()

	inst := NewInstance(packassets.DefaultConfiguration(),
		WithProductionURL("https://example.com"),
		withGetenv(noEnv),
	)
	if inst.FrontendPriority() != DefaultPriority || inst.EditorPriority() != DefaultPriority {
		t.Fatalf("default priorities = %d/%d, want %d", inst.FrontendPriority(), inst.EditorPriority(), DefaultPriority)
	}

	if got := inst.SetFrontendPriority(0).FrontendPriority(); got != DefaultPriority {
		t.Errorf("SetFrontendPriority(0) = %d, want %d", got, DefaultPriority)
	}
	if got := inst.SetEditorPriority(-3).EditorPriority(); got != DefaultPriority {
		t.Errorf("SetEditorPriority(-3) = %d, want %d", got, DefaultPriority)
	}

	q := NewActionQueue()
	var order []string
	q.AddAction(PhaseEditor, 10, func() { order = append(order, "other") })
	inst.SetEditorPriority(5).RegisterEditor(q, func(*Instance) { order = append(order, "instance") })
	q.Run(PhaseEditor)

	if strings.Join(order, ",") != "instance,other" {
		t.Errorf("order = %v, want [instance other]", order)
	}
}

func TestInstance_RegisterNilCallback(t *testing.T) {
	t.Parallel()

	inst := NewInstance(packassets.DefaultConfiguration(), withGetenv(noEnv))
	q := NewActionQueue()
	inst.RegisterFrontend(q, nil)
	if q.Len(PhaseFrontend) != 0 {
		t.Error("nil callback should not be scheduled")
	}
}
