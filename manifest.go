package packassets

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// File types used as manifest keys and URL extensions.
const (
	FileTypeScript = "js"
	FileTypeStyle  = "css"
)

// Manifest maps an entry point name to its emitted files, as written by the
// bundler's asset manifest plugin:
//
//	{"app": {"js": ["/js/app.legacy.js", "/js/app.modern.js"], "css": "/css/app.css"}}
type Manifest map[string]ManifestEntry

// ManifestEntry maps a file type ("js", "css") to its emitted paths.
type ManifestEntry map[string]ManifestPaths

// UnmarshalJSON decodes an object of file types. Any other JSON value
// leaves the entry absent instead of failing the whole manifest.
func (e *ManifestEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*e = nil
		return nil
	}
	entry := make(ManifestEntry, len(raw))
	for fileType, value := range raw {
		var paths ManifestPaths
		if err := json.Unmarshal(value, &paths); err != nil {
			return err
		}
		entry[fileType] = paths
	}
	*e = entry
	return nil
}

// ManifestPaths holds one or more emitted paths for a single file type.
// A JSON string decodes to a one-element list; null decodes to nil.
type ManifestPaths []string

// UnmarshalJSON accepts a string or an array of strings. Null and any other
// value (numbers, objects, mixed arrays) decode to nil, so only that file
// type is absent.
func (p *ManifestPaths) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			*p = nil
			return nil
		}
		*p = ManifestPaths{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		*p = nil
		return nil
	}
	if list == nil && !bytes.Equal(data, []byte("null")) {
		list = []string{}
	}
	*p = list
	return nil
}

// ParseManifest decodes a manifest document. Empty input, malformed JSON,
// and a root that is not an object return an error wrapping ErrManifestLoad.
// Unusable values below the root only make their own entry or file type absent.
func ParseManifest(data []byte) (Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrManifestLoad)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestLoad, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: document is null", ErrManifestLoad)
	}
	return m, nil
}

// Lookup returns the paths recorded for entry and fileType.
// The second result is false when either key is missing or the value is null.
func (m Manifest) Lookup(entry, fileType string) (ManifestPaths, bool) {
	if m == nil {
		return nil, false
	}
	e, ok := m[entry]
	if !ok || e == nil {
		return nil, false
	}
	paths, ok := e[fileType]
	if !ok || paths == nil {
		return nil, false
	}
	return paths, true
}

// Select picks the path for env: the last element in production, the first
// in development. Returns ErrManifestFormat for an empty list.
func (p ManifestPaths) Select(env Environment) (string, error) {
	if len(p) == 0 {
		return "", fmt.Errorf("%w: empty path list", ErrManifestFormat)
	}
	if env == Production {
		return p[len(p)-1], nil
	}
	return p[0], nil
}
