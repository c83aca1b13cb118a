package packassets

import "strings"

// entryRegistry is an insertion-ordered map of entry name to dependency handles.
type entryRegistry struct {
	order []string
	deps  map[string][]string
}

func newEntryRegistry() *entryRegistry {
	return &entryRegistry{deps: map[string][]string{}}
}

// set stores deps for entry. The name is trimmed and lower-cased; blank names
// are ignored. Re-registering an entry replaces its dependencies and keeps
// its original position.
func (r *entryRegistry) set(entry string, deps []string) {
	name := normalizeEntry(entry)
	if name == "" {
		return
	}
	if _, exists := r.deps[name]; !exists {
		r.order = append(r.order, name)
	}
	r.deps[name] = append([]string{}, deps...)
}

// each visits entries in registration order.
func (r *entryRegistry) each(fn func(entry string, deps []string)) {
	for _, name := range r.order {
		fn(name, r.deps[name])
	}
}

func (r *entryRegistry) len() int {
	return len(r.order)
}

// entries returns the registered names in order.
func (r *entryRegistry) entries() []string {
	return append([]string{}, r.order...)
}

func normalizeEntry(entry string) string {
	return strings.ToLower(strings.TrimSpace(entry))
}
