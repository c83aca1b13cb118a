package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	packassets "github.com/alnah/go-packassets"
	"github.com/alnah/go-packassets/internal/fileutil"
	"github.com/alnah/go-packassets/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrNoInstances     = errors.New("config defines no instances")
	ErrInvalidField    = errors.New("invalid config field")
)

// DefaultConfigName is the config name searched when none is given.
const DefaultConfigName = "packassets"

// Field length limits for multi-tenant safety.
const (
	MaxNameLength    = 100  // Instance and entry names, handle prefix
	MaxURLLength     = 2048 // Browser limit
	MaxPathLength    = 1024 // URL fragments and disk paths
	MaxVersionLength = 50   // "1.4.2", git SHA
	MaxEntries       = 200  // Entries per category
	MaxDomains       = 50   // Production domains per instance
)

// Config holds every asset instance of a project.
type Config struct {
	Instances map[string]InstanceConfig `yaml:"instances"`
}

// InstanceConfig describes one resolver instance: its base URLs, path
// conventions, and the entries registered on each host phase. An empty
// developmentUrl keeps the instance in production; an empty manifestPath
// uses conventional paths only. Zero priorities mean the default (10).
type InstanceConfig struct {
	ProductionURL           string      `yaml:"productionUrl"`
	DevelopmentURL          string      `yaml:"developmentUrl,omitempty"`
	ProductionFilePath      string      `yaml:"productionFilePath,omitempty"`
	Version                 string      `yaml:"version,omitempty"`
	ManifestPath            string      `yaml:"manifestPath,omitempty"`
	HandlePrefix            string      `yaml:"handlePrefix,omitempty"`
	ScriptPath              string      `yaml:"scriptPath,omitempty"`
	StylePath               string      `yaml:"stylePath,omitempty"`
	StaticPath              string      `yaml:"staticPath,omitempty"`
	ProductionDomains       []string    `yaml:"productionDomains,omitempty"`
	DevelopmentStylesInHead bool        `yaml:"developmentStylesInHead,omitempty"`
	FrontendPriority        int         `yaml:"frontendPriority,omitempty"`
	EditorPriority          int         `yaml:"editorPriority,omitempty"`
	Frontend                PhaseConfig `yaml:"frontend,omitempty"`
	Editor                  PhaseConfig `yaml:"editor,omitempty"`
}

// PhaseConfig lists the entries registered on one host phase, per category.
type PhaseConfig struct {
	VendorScripts      []Entry `yaml:"vendorScripts,omitempty"`
	RuntimeScripts     []Entry `yaml:"runtimeScripts,omitempty"`
	VendorStyles       []Entry `yaml:"vendorStyles,omitempty"`
	VendorApplications []Entry `yaml:"vendorApplications,omitempty"`
	Scripts            []Entry `yaml:"scripts,omitempty"`
	Styles             []Entry `yaml:"styles,omitempty"`
	Applications       []Entry `yaml:"applications,omitempty"`
}

// Entry is one bundler entry point and its declared dependencies.
type Entry struct {
	Entry        string   `yaml:"entry"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// Configuration converts the instance settings to a resolver configuration.
// Blank fields take the resolver defaults.
func (ic InstanceConfig) Configuration() packassets.Configuration {
	return packassets.NewConfiguration(
		packassets.WithVersion(ic.Version),
		packassets.WithManifestPath(ic.ManifestPath),
		packassets.WithHandlePrefix(ic.HandlePrefix),
		packassets.WithScriptPath(ic.ScriptPath),
		packassets.WithStylePath(ic.StylePath),
		packassets.WithStaticPath(ic.StaticPath),
		packassets.WithProductionDomains(ic.ProductionDomains...),
		packassets.WithProductionFilePath(ic.ProductionFilePath),
		packassets.WithDevelopmentStylesInHead(ic.DevelopmentStylesInHead),
	)
}

// Phase returns the entries for a host phase name ("frontend" or "editor").
func (ic InstanceConfig) Phase(name string) (PhaseConfig, error) {
	switch name {
	case "frontend":
		return ic.Frontend, nil
	case "editor":
		return ic.Editor, nil
	default:
		return PhaseConfig{}, fmt.Errorf("%w: unknown phase %q (must be frontend or editor)", ErrInvalidField, name)
	}
}

// phaseList is one category of a phase.
type phaseList struct {
	category packassets.Category
	entries  []Entry
}

// categories returns the phase lists in registration order.
func (p PhaseConfig) categories() []phaseList {
	return []phaseList{
		{packassets.CategoryVendorScripts, p.VendorScripts},
		{packassets.CategoryRuntimeScripts, p.RuntimeScripts},
		{packassets.CategoryVendorStyles, p.VendorStyles},
		{packassets.CategoryVendorApplications, p.VendorApplications},
		{packassets.CategoryScripts, p.Scripts},
		{packassets.CategoryStyles, p.Styles},
		{packassets.CategoryApplications, p.Applications},
	}
}

// Apply registers every entry of the phase on r, category by category.
func (p PhaseConfig) Apply(r *packassets.Resolver) error {
	for _, c := range p.categories() {
		for _, e := range c.entries {
			if err := r.Register(c.category, e.Entry, e.Dependencies...); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of entries across all categories.
func (p PhaseConfig) Len() int {
	n := 0
	for _, c := range p.categories() {
		n += len(c.entries)
	}
	return n
}

// InstanceNames returns the configured instance names in sorted order.
func (c *Config) InstanceNames() []string {
	names := make([]string, 0, len(c.Instances))
	for name := range c.Instances {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Instance returns the named instance or an error wrapping packassets.ErrInstanceNotFound.
func (c *Config) Instance(name string) (InstanceConfig, error) {
	ic, ok := c.Instances[name]
	if !ok {
		return InstanceConfig{}, fmt.Errorf("%w: %q", packassets.ErrInstanceNotFound, name)
	}
	return ic, nil
}

// Validate checks required fields and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if len(c.Instances) == 0 {
		return ErrNoInstances
	}
	for _, name := range c.InstanceNames() {
		if err := c.Instances[name].validate(name); err != nil {
			return err
		}
	}
	return nil
}

func (ic InstanceConfig) validate(name string) error {
	prefix := "instances." + name
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: instance name cannot be blank", ErrInvalidField)
	}
	if err := validateFieldLength(prefix, name, MaxNameLength); err != nil {
		return err
	}
	if strings.TrimSpace(ic.ProductionURL) == "" {
		return fmt.Errorf("%w: %s.productionUrl: required", ErrInvalidField, prefix)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"productionUrl", ic.ProductionURL, MaxURLLength},
		{"developmentUrl", ic.DevelopmentURL, MaxURLLength},
		{"productionFilePath", ic.ProductionFilePath, MaxPathLength},
		{"version", ic.Version, MaxVersionLength},
		{"manifestPath", ic.ManifestPath, MaxPathLength},
		{"handlePrefix", ic.HandlePrefix, MaxNameLength},
		{"scriptPath", ic.ScriptPath, MaxPathLength},
		{"stylePath", ic.StylePath, MaxPathLength},
		{"staticPath", ic.StaticPath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(prefix+"."+f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if len(ic.ProductionDomains) > MaxDomains {
		return fmt.Errorf("%w: %s.productionDomains (%d domains, max %d)", ErrFieldTooLong, prefix, len(ic.ProductionDomains), MaxDomains)
	}
	for i, d := range ic.ProductionDomains {
		if err := validateFieldLength(fmt.Sprintf("%s.productionDomains[%d]", prefix, i), d, MaxURLLength); err != nil {
			return err
		}
	}

	if ic.FrontendPriority < 0 {
		return fmt.Errorf("%w: %s.frontendPriority: must be >= 0, got %d", ErrInvalidField, prefix, ic.FrontendPriority)
	}
	if ic.EditorPriority < 0 {
		return fmt.Errorf("%w: %s.editorPriority: must be >= 0, got %d", ErrInvalidField, prefix, ic.EditorPriority)
	}

	if err := ic.Frontend.validate(prefix + ".frontend"); err != nil {
		return err
	}
	return ic.Editor.validate(prefix + ".editor")
}

func (p PhaseConfig) validate(prefix string) error {
	for _, c := range p.categories() {
		field := prefix + "." + string(c.category)
		if len(c.entries) > MaxEntries {
			return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, field, len(c.entries), MaxEntries)
		}
		for i, e := range c.entries {
			entryField := fmt.Sprintf("%s[%d]", field, i)
			if strings.TrimSpace(e.Entry) == "" {
				return fmt.Errorf("%w: %s.entry: required", ErrInvalidField, entryField)
			}
			if err := validateFieldLength(entryField+".entry", e.Entry, MaxNameLength); err != nil {
				return err
			}
			for j, dep := range e.Dependencies {
				if err := validateFieldLength(fmt.Sprintf("%s.dependencies[%d]", entryField, j), dep, MaxNameLength); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a starter configuration with a single theme instance.
func DefaultConfig() *Config {
	return &Config{
		Instances: map[string]InstanceConfig{
			defaultInstanceName: {
				ProductionURL:     "https://example.com",
				DevelopmentURL:    "https://localhost:4400",
				ManifestPath:      "/assets/dist/webpack-assets.json",
				ProductionDomains: []string{"example.com"},
				Frontend: PhaseConfig{
					RuntimeScripts: []Entry{{Entry: "runtime"}},
					Applications:   []Entry{{Entry: "theme"}},
				},
				Editor: PhaseConfig{
					Applications: []Entry{{Entry: "editor", Dependencies: []string{"wp-blocks"}}},
				},
			},
		},
	}
}

// defaultInstanceName matches host.DefaultInstanceName.
const defaultInstanceName = "theme"

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in search order:
// current directory first, then ~/.config/go-packassets/, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-packassets", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
