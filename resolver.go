package packassets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Resolver resolves bundler entry points to URLs and emits them in a stable
// load order. It decides the environment and loads the manifest once, at
// construction. A Resolver is meant to live for one request and is not safe
// for concurrent registration.
type Resolver struct {
	productionURL    string
	developmentURL   string
	cfg              Configuration
	env              Environment
	manifest         Manifest
	manifestLocation string
	manifestErr      error
	logger           *log.Logger

	vendorScripts  *entryRegistry
	vendorStyles   *entryRegistry
	runtimeScripts *entryRegistry
	scripts        *entryRegistry
	styles         *entryRegistry
}

// Option configures a Resolver.
type Option func(*resolverOptions)

// resolverOptions holds construction-time settings for NewResolver.
type resolverOptions struct {
	developmentURL string
	cfg            *Configuration
	logger         *log.Logger
	client         *http.Client
	timeout        time.Duration
	ctx            context.Context
}

// WithDevelopmentURL sets the development server base URL.
// Blank keeps the resolver in production mode.
func WithDevelopmentURL(url string) Option {
	return func(o *resolverOptions) {
		o.developmentURL = url
	}
}

// WithConfiguration sets the path conventions. Defaults to DefaultConfiguration.
func WithConfiguration(cfg Configuration) Option {
	return func(o *resolverOptions) {
		o.cfg = &cfg
	}
}

// WithLogger sets the logger for manifest diagnostics. Defaults to discarding output.
func WithLogger(logger *log.Logger) Option {
	return func(o *resolverOptions) {
		o.logger = logger
	}
}

// WithHTTPClient sets the client used to fetch network manifests.
// The caller owns its TLS and timeout settings.
func WithHTTPClient(client *http.Client) Option {
	return func(o *resolverOptions) {
		o.client = client
	}
}

// WithManifestTimeout sets the network manifest fetch timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithManifestTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("packassets: WithManifestTimeout duration must be positive")
	}
	return func(o *resolverOptions) {
		o.timeout = d
	}
}

// WithContext sets the context for the construction-time manifest fetch.
func WithContext(ctx context.Context) Option {
	return func(o *resolverOptions) {
		o.ctx = ctx
	}
}

// NewResolver creates a Resolver for productionURL.
// Returns ErrBaseURLRequired if productionURL is blank. Manifest problems
// never fail construction: they are logged and the manifest is treated as absent.
func NewResolver(productionURL string, opts ...Option) (*Resolver, error) {
	productionURL = strings.TrimSpace(productionURL)
	if productionURL == "" {
		return nil, ErrBaseURLRequired
	}

	o := resolverOptions{timeout: defaultManifestTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	cfg := DefaultConfiguration()
	if o.cfg != nil {
		cfg = *o.cfg
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.client == nil {
		o.client = newManifestClient(o.timeout)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}

	r := &Resolver{
		productionURL:  productionURL,
		developmentURL: strings.TrimSpace(o.developmentURL),
		cfg:            cfg,
		logger:         o.logger,
		vendorScripts:  newEntryRegistry(),
		vendorStyles:   newEntryRegistry(),
		runtimeScripts: newEntryRegistry(),
		scripts:        newEntryRegistry(),
		styles:         newEntryRegistry(),
	}
	r.env = DetectEnvironment(r.productionURL, r.developmentURL, cfg.ProductionDomains())

	r.manifestLocation = manifestLocation(cfg, r.env, r.BaseURL())
	if r.manifestLocation != "" {
		manifest, err := loadManifest(o.ctx, o.client, r.manifestLocation)
		if err != nil {
			r.manifestErr = err
			r.logger.Debug("asset manifest unavailable, using conventional paths",
				"location", r.manifestLocation, "err", err)
		} else {
			r.manifest = manifest
		}
	}

	return r, nil
}

// Environment returns the delivery mode chosen at construction.
func (r *Resolver) Environment() Environment { return r.env }

// InDevelopmentMode reports whether assets come from the development server.
func (r *Resolver) InDevelopmentMode() bool { return r.env == Development }

// Configuration returns the resolver's configuration.
func (r *Resolver) Configuration() Configuration { return r.cfg }

// BaseURL returns the base URL for the active environment.
func (r *Resolver) BaseURL() string {
	if r.env == Development {
		return r.developmentURL
	}
	return r.productionURL
}

// HasManifest reports whether a manifest was loaded.
func (r *Resolver) HasManifest() bool { return r.manifest != nil }

// InManifest reports whether the loaded manifest has a usable path for
// entry of fileType in the active environment.
func (r *Resolver) InManifest(entry, fileType string) bool {
	paths, ok := r.manifest.Lookup(entry, fileType)
	if !ok {
		return false
	}
	path, err := paths.Select(r.env)
	return err == nil && path != ""
}

// ManifestLocation returns the path or URL the manifest was read from,
// empty when no manifest is configured.
func (r *Resolver) ManifestLocation() string { return r.manifestLocation }

// ManifestError returns the recovered manifest load failure, if any.
func (r *Resolver) ManifestError() error { return r.manifestErr }

// Handle returns the prefixed handle for entry.
func (r *Resolver) Handle(entry string) string {
	return r.cfg.HandlePrefix() + entry
}

// ResolveEntryURL returns the URL for entry of fileType. The manifest value
// wins when present; otherwise the URL is basePath + conventionalPath +
// entry + "." + fileType.
func (r *Resolver) ResolveEntryURL(basePath, conventionalPath, entry, fileType string) string {
	fallback := basePath + conventionalPath + entry + "." + fileType

	paths, ok := r.manifest.Lookup(entry, fileType)
	if !ok {
		return fallback
	}
	path, err := paths.Select(r.env)
	if err != nil {
		r.logger.Debug("manifest entry unusable, using conventional path",
			"entry", entry, "type", fileType, "err", err)
		return fallback
	}
	if path == "" {
		return fallback
	}

	if strings.HasPrefix(path, basePath) {
		return path
	}
	return basePath + entrySlug(conventionalPath, fileType) + path
}

// entrySlug drops a trailing "<fileType>/" segment from path, for manifests
// whose values already include the type directory.
func entrySlug(path, fileType string) string {
	return strings.TrimSuffix(path, fileType+"/")
}

// ScriptURL resolves a script entry against the active base URL.
func (r *Resolver) ScriptURL(entry string) string {
	return r.ResolveEntryURL(r.BaseURL(), r.cfg.ScriptPath(), entry, FileTypeScript)
}

// StyleURL resolves a stylesheet entry against the active base URL.
func (r *Resolver) StyleURL(entry string) string {
	return r.ResolveEntryURL(r.BaseURL(), r.cfg.StylePath(), entry, FileTypeStyle)
}

// StaticAssetURL returns the URL of a static file. Static files never go
// through the manifest.
func (r *Resolver) StaticAssetURL(relativePath string) string {
	return r.BaseURL() + r.cfg.StaticPath() + relativePath
}

// RegisterScript registers an application script.
// Registering the same entry again replaces its dependencies.
func (r *Resolver) RegisterScript(entry string, deps ...string) {
	r.scripts.set(entry, deps)
}

// RegisterStyle registers an application stylesheet.
func (r *Resolver) RegisterStyle(entry string, deps ...string) {
	r.styles.set(entry, deps)
}

// RegisterRuntimeScript registers a bundler runtime chunk.
func (r *Resolver) RegisterRuntimeScript(entry string, deps ...string) {
	r.runtimeScripts.set(entry, deps)
}

// RegisterVendorScript registers a vendor script.
func (r *Resolver) RegisterVendorScript(entry string, deps ...string) {
	r.vendorScripts.set(entry, deps)
}

// RegisterVendorStyle registers a vendor stylesheet.
func (r *Resolver) RegisterVendorStyle(entry string, deps ...string) {
	r.vendorStyles.set(entry, deps)
}

// RegisterApplication registers an application script and, in production,
// its stylesheet. Development builds ship styles inside the script.
func (r *Resolver) RegisterApplication(entry string, deps ...string) {
	r.RegisterScript(entry, deps...)
	if !r.InDevelopmentMode() {
		r.RegisterStyle(entry, deps...)
	}
}

// RegisterVendorApplication registers a vendor script and, in production,
// its stylesheet.
func (r *Resolver) RegisterVendorApplication(entry string, deps ...string) {
	r.RegisterVendorScript(entry, deps...)
	if !r.InDevelopmentMode() {
		r.RegisterVendorStyle(entry, deps...)
	}
}

// Entries returns the registered entry names per category, in order.
func (r *Resolver) Entries() map[Category][]string {
	return map[Category][]string{
		CategoryVendorScripts:  r.vendorScripts.entries(),
		CategoryVendorStyles:   r.vendorStyles.entries(),
		CategoryRuntimeScripts: r.runtimeScripts.entries(),
		CategoryScripts:        r.scripts.entries(),
		CategoryStyles:         r.styles.entries(),
	}
}

// Register adds entry to category. It returns an error for an unknown category.
func (r *Resolver) Register(category Category, entry string, deps ...string) error {
	switch category {
	case CategoryVendorScripts:
		r.RegisterVendorScript(entry, deps...)
	case CategoryVendorStyles:
		r.RegisterVendorStyle(entry, deps...)
	case CategoryRuntimeScripts:
		r.RegisterRuntimeScript(entry, deps...)
	case CategoryScripts:
		r.RegisterScript(entry, deps...)
	case CategoryStyles:
		r.RegisterStyle(entry, deps...)
	case CategoryApplications:
		r.RegisterApplication(entry, deps...)
	case CategoryVendorApplications:
		r.RegisterVendorApplication(entry, deps...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return nil
}
