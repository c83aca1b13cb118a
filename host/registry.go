package host

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	packassets "github.com/alnah/go-packassets"
)

// DefaultInstanceName is the conventional name of the theme's own instance.
const DefaultInstanceName = "theme"

// Registry holds named instances for the lifetime of a process.
// The first registration under a name wins; later ones return the existing instance.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Instance
	logger    *log.Logger
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Registry{instances: map[string]*Instance{}, logger: logger}
}

// Register stores the instance built by build under name unless one exists.
// build is not called when the name is taken.
func (r *Registry) Register(name string, build func() *Instance) *Instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.instances[name]; ok {
		return existing
	}
	inst := build()
	if inst == nil {
		return nil
	}
	r.instances[name] = inst
	return inst
}

// Instance returns the instance registered under name, or nil with a warning.
func (r *Registry) Instance(name string) *Instance {
	inst, err := r.Lookup(name)
	if err != nil {
		r.logger.Warn("asset loader instance not found", "name", name)
		return nil
	}
	return inst
}

// Lookup returns the instance registered under name.
func (r *Registry) Lookup(name string) (*Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.instances[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", packassets.ErrInstanceNotFound, name)
	}
	return inst, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.instances))
	for name := range r.instances {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
