package host

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	packassets "github.com/alnah/go-packassets"
)

func newTestInstance(url string) *Instance {
	return NewInstance(packassets.DefaultConfiguration(), WithProductionURL(url), withGetenv(noEnv))
}

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	first := reg.Register(DefaultInstanceName, func() *Instance { return newTestInstance("https://one.example") })

	built := false
	second := reg.Register(DefaultInstanceName, func() *Instance {
		built = true
		return newTestInstance("https://two.example")
	})

	if second != first {
		t.Error("second Register() returned a different instance")
	}
	if built {
		t.Error("builder called for a taken name")
	}
	if got := reg.Instance(DefaultInstanceName).ProductionURL(); got != "https://one.example" {
		t.Errorf("ProductionURL() = %q, want https://one.example", got)
	}
}

func TestRegistry_NilBuilderResult(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	if got := reg.Register("plugin", func() *Instance { return nil }); got != nil {
		t.Errorf("Register() = %v, want nil", got)
	}
	if len(reg.Names()) != 0 {
		t.Errorf("Names() = %v, want empty", reg.Names())
	}
}

func TestRegistry_Missing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reg := NewRegistry(log.New(&buf))

	if inst := reg.Instance("nope"); inst != nil {
		t.Errorf("Instance() = %v, want nil", inst)
	}
	if !strings.Contains(buf.String(), "asset loader instance not found") {
		t.Errorf("expected warning, got %q", buf.String())
	}

	_, err := reg.Lookup("nope")
	if !errors.Is(err, packassets.ErrInstanceNotFound) {
		t.Errorf("Lookup() error = %v, want ErrInstanceNotFound", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	for _, name := range []string{"theme", "blocks", "plugin"} {
		reg.Register(name, func() *Instance { return newTestInstance("https://example.com") })
	}

	want := []string{"blocks", "plugin", "theme"}
	if got := reg.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	results := make([]*Instance, 16)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = reg.Register("shared", func() *Instance { return newTestInstance("https://example.com") })
		}(i)
	}
	wg.Wait()

	for i, inst := range results {
		if inst != results[0] {
			t.Fatalf("results[%d] differs from results[0]", i)
		}
	}
}
