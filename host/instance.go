package host

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	packassets "github.com/alnah/go-packassets"
)

// DevelopmentURLEnv names the environment variable read for the development
// URL when none is passed explicitly.
const DevelopmentURLEnv = "PACKASSETS_DEVELOPMENT_URL"

// Instance binds one configured Resolver to host phases. A failed resolver
// construction is logged once; the instance stays usable and enqueues nothing.
type Instance struct {
	cfg              packassets.Configuration
	productionURL    string
	developmentURL   string
	resolver         *packassets.Resolver
	err              error
	frontendPriority int
	editorPriority   int
	logger           *log.Logger
}

// InstanceOption configures NewInstance.
type InstanceOption func(*instanceOptions)

type instanceOptions struct {
	productionURL   string
	developmentURL  string
	defaultFilePath string
	logger          *log.Logger
	resolverOpts    []packassets.Option
	getenv          func(string) string
}

// WithProductionURL sets the production base URL.
func WithProductionURL(url string) InstanceOption {
	return func(o *instanceOptions) { o.productionURL = url }
}

// WithDevelopmentURL sets the development base URL. When unset, the value of
// PACKASSETS_DEVELOPMENT_URL is used.
func WithDevelopmentURL(url string) InstanceOption {
	return func(o *instanceOptions) { o.developmentURL = url }
}

// WithDefaultFilePath sets the production file path used when the
// configuration does not carry one, so production manifests are read from disk.
func WithDefaultFilePath(path string) InstanceOption {
	return func(o *instanceOptions) { o.defaultFilePath = path }
}

// WithLogger sets the logger shared with the resolver.
func WithLogger(logger *log.Logger) InstanceOption {
	return func(o *instanceOptions) { o.logger = logger }
}

// WithResolverOptions passes extra options (HTTP client, timeout, context) to the resolver.
func WithResolverOptions(opts ...packassets.Option) InstanceOption {
	return func(o *instanceOptions) { o.resolverOpts = append(o.resolverOpts, opts...) }
}

// withGetenv replaces os.Getenv in tests.
func withGetenv(fn func(string) string) InstanceOption {
	return func(o *instanceOptions) { o.getenv = fn }
}

// NewInstance builds the resolver for cfg. It never fails: construction
// errors are logged and exposed through Err.
func NewInstance(cfg packassets.Configuration, opts ...InstanceOption) *Instance {
	o := instanceOptions{getenv: os.Getenv}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	devURL := strings.TrimSpace(o.developmentURL)
	if devURL == "" {
		devURL = strings.TrimSpace(o.getenv(DevelopmentURLEnv))
	}

	if cfg.ProductionFilePath() == "" && strings.TrimSpace(o.defaultFilePath) != "" {
		cfg = cfg.With(packassets.WithProductionFilePath(o.defaultFilePath))
	}

	inst := &Instance{
		cfg:              cfg,
		productionURL:    strings.TrimSpace(o.productionURL),
		developmentURL:   devURL,
		frontendPriority: DefaultPriority,
		editorPriority:   DefaultPriority,
		logger:           o.logger,
	}

	resolverOpts := append([]packassets.Option{
		packassets.WithDevelopmentURL(devURL),
		packassets.WithConfiguration(cfg),
		packassets.WithLogger(o.logger),
	}, o.resolverOpts...)

	r, err := packassets.NewResolver(inst.productionURL, resolverOpts...)
	if err != nil {
		inst.err = err
		inst.logger.Error("asset loader not registered", "err", err)
		return inst
	}
	inst.resolver = r
	return inst
}

// Resolver returns the instance's resolver, nil if construction failed.
func (i *Instance) Resolver() *packassets.Resolver { return i.resolver }

// Err returns the resolver construction error, if any.
func (i *Instance) Err() error { return i.err }

// Configuration returns the effective configuration, including any injected file path.
func (i *Instance) Configuration() packassets.Configuration { return i.cfg }

// ProductionURL returns the configured production base URL.
func (i *Instance) ProductionURL() string { return i.productionURL }

// DevelopmentURL returns the effective development base URL.
func (i *Instance) DevelopmentURL() string { return i.developmentURL }

// StaticAssetURL returns the static file URL for the active environment,
// or "" when the resolver is unavailable.
func (i *Instance) StaticAssetURL(relativePath string) string {
	if i.resolver == nil {
		return ""
	}
	return i.resolver.StaticAssetURL(relativePath)
}

// Enqueue emits the resolver's assets to sink. It is a no-op without a resolver.
func (i *Instance) Enqueue(sink packassets.Sink) {
	if i.resolver == nil {
		return
	}
	i.resolver.EnqueueAll(sink)
}

// RegisterFrontend schedules fn on the front-end phase at the instance's priority.
func (i *Instance) RegisterFrontend(hooks Hooks, fn func(*Instance)) {
	i.register(hooks, PhaseFrontend, i.frontendPriority, fn)
}

// RegisterEditor schedules fn on the editor phase at the instance's priority.
func (i *Instance) RegisterEditor(hooks Hooks, fn func(*Instance)) {
	i.register(hooks, PhaseEditor, i.editorPriority, fn)
}

func (i *Instance) register(hooks Hooks, phase Phase, priority int, fn func(*Instance)) {
	if fn == nil {
		return
	}
	hooks.AddAction(phase, priority, func() { fn(i) })
}

// SetFrontendPriority sets the front-end priority; non-positive values become 10.
// Only affects callbacks registered afterwards.
func (i *Instance) SetFrontendPriority(p int) *Instance {
	i.frontendPriority = normalizePriority(p)
	return i
}

// SetEditorPriority sets the editor priority; non-positive values become 10.
func (i *Instance) SetEditorPriority(p int) *Instance {
	i.editorPriority = normalizePriority(p)
	return i
}

// FrontendPriority returns the front-end phase priority.
func (i *Instance) FrontendPriority() int { return i.frontendPriority }

// EditorPriority returns the editor phase priority.
func (i *Instance) EditorPriority() int { return i.editorPriority }
