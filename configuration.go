package packassets

import "strings"

// Default path conventions and handle prefix.
const (
	DefaultScriptPath   = "/assets/dist/js/"
	DefaultStylePath    = "/assets/dist/css/"
	DefaultStaticPath   = "/assets/dist/static/"
	DefaultHandlePrefix = "kanopi-pack-"
)

// Configuration holds the path conventions and naming rules used by a Resolver.
// It is an immutable value: build it with NewConfiguration and derive variants
// with With. The zero value is not ready for use.
type Configuration struct {
	version                 string
	manifestPath            string
	handlePrefix            string
	scriptPath              string
	stylePath               string
	staticPath              string
	productionDomains       []string
	productionFilePath      string
	developmentStylesInHead bool
}

// ConfigOption configures a Configuration.
type ConfigOption func(*Configuration)

// NewConfiguration creates a Configuration with defaults for every field not
// set by an option. String values are trimmed; blank values fall back to the
// default for that field.
func NewConfiguration(opts ...ConfigOption) Configuration {
	c := Configuration{
		handlePrefix: DefaultHandlePrefix,
		scriptPath:   DefaultScriptPath,
		stylePath:    DefaultStylePath,
		staticPath:   DefaultStaticPath,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// DefaultConfiguration returns a Configuration with every field defaulted.
func DefaultConfiguration() Configuration {
	return NewConfiguration()
}

// With returns a copy of c with opts applied. The receiver is left untouched,
// so a host can inject a derived value (e.g. a production file path) without
// rebuilding the whole configuration.
func (c Configuration) With(opts ...ConfigOption) Configuration {
	cp := c
	cp.productionDomains = append([]string(nil), c.productionDomains...)
	for _, opt := range opts {
		opt(&cp)
	}
	return cp
}

// WithVersion sets the cache-busting version passed with every asset.
func WithVersion(version string) ConfigOption {
	return func(c *Configuration) {
		c.version = strings.TrimSpace(version)
	}
}

// WithManifestPath sets the manifest location relative to the active base.
// Blank disables manifest lookups.
func WithManifestPath(path string) ConfigOption {
	return func(c *Configuration) {
		c.manifestPath = strings.TrimSpace(path)
	}
}

// WithHandlePrefix sets the prefix prepended to every entry handle.
func WithHandlePrefix(prefix string) ConfigOption {
	return func(c *Configuration) {
		c.handlePrefix = orDefault(prefix, DefaultHandlePrefix)
	}
}

// WithScriptPath sets the conventional URL fragment for scripts.
func WithScriptPath(path string) ConfigOption {
	return func(c *Configuration) {
		c.scriptPath = orDefault(path, DefaultScriptPath)
	}
}

// WithStylePath sets the conventional URL fragment for stylesheets.
func WithStylePath(path string) ConfigOption {
	return func(c *Configuration) {
		c.stylePath = orDefault(path, DefaultStylePath)
	}
}

// WithStaticPath sets the URL fragment for static files.
func WithStaticPath(path string) ConfigOption {
	return func(c *Configuration) {
		c.staticPath = orDefault(path, DefaultStaticPath)
	}
}

// WithProductionDomains sets the hostnames that always force production mode.
// Names are trimmed and lower-cased; blank names are dropped.
func WithProductionDomains(domains ...string) ConfigOption {
	return func(c *Configuration) {
		c.productionDomains = make([]string, 0, len(domains))
		for _, d := range domains {
			d = strings.ToLower(strings.TrimSpace(d))
			if d != "" {
				c.productionDomains = append(c.productionDomains, d)
			}
		}
	}
}

// WithProductionFilePath sets the disk root used to read the manifest in production.
func WithProductionFilePath(path string) ConfigOption {
	return func(c *Configuration) {
		c.productionFilePath = strings.TrimSpace(path)
	}
}

// WithDevelopmentStylesInHead places development styles, which are delivered
// as scripts, in the document head instead of the footer.
func WithDevelopmentStylesInHead(inHead bool) ConfigOption {
	return func(c *Configuration) {
		c.developmentStylesInHead = inHead
	}
}

// Version returns the cache-busting version, empty when unset.
func (c Configuration) Version() string { return c.version }

// ManifestPath returns the manifest path, empty when no manifest is used.
func (c Configuration) ManifestPath() string { return c.manifestPath }

// HandlePrefix returns the prefix placed before every entry handle.
func (c Configuration) HandlePrefix() string { return c.handlePrefix }

// ScriptPath returns the URL fragment before script files.
func (c Configuration) ScriptPath() string { return c.scriptPath }

// StylePath returns the URL fragment before stylesheet files.
func (c Configuration) StylePath() string { return c.stylePath }

// StaticPath returns the URL fragment before static files.
func (c Configuration) StaticPath() string { return c.staticPath }

// ProductionDomains returns a copy of the production domain set.
func (c Configuration) ProductionDomains() []string {
	return append([]string{}, c.productionDomains...)
}

// ProductionFilePath returns the disk root for the production manifest.
func (c Configuration) ProductionFilePath() string { return c.productionFilePath }

// DevelopmentStylesInHead reports whether development styles go in the head.
func (c Configuration) DevelopmentStylesInHead() bool { return c.developmentStylesInHead }

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
