package packassets

// AssetKind distinguishes how the host should load an asset.
type AssetKind int

const (
	// KindScript is loaded with a script tag.
	KindScript AssetKind = iota
	// KindStyle is loaded with a stylesheet link.
	KindStyle
)

// String returns "script" or "style".
func (k AssetKind) String() string {
	if k == KindStyle {
		return "style"
	}
	return "script"
}

// Asset is one resolved enqueue call handed to the host.
type Asset struct {
	Kind         AssetKind
	Entry        string   // registered entry name
	Handle       string   // handle prefix + entry
	URL          string   // resolved URL
	Dependencies []string // declared dependencies, then chain predecessor
	Version      string   // cache-busting version, empty when unset
	InFooter     bool     // scripts only
}

// Sink receives enqueue calls from Resolver.EnqueueAll.
// Scripts are registered and activated in one call. Stylesheets are
// registered first and activated by handle afterwards.
type Sink interface {
	EnqueueScript(a Asset)
	RegisterStyle(a Asset)
	EnqueueStyle(handle string)
}

// SinkFuncs adapts plain functions to Sink. Nil fields are no-ops.
type SinkFuncs struct {
	Script        func(Asset)
	Style         func(Asset)
	ActivateStyle func(handle string)
}

// EnqueueScript calls f.Script.
func (f SinkFuncs) EnqueueScript(a Asset) {
	if f.Script != nil {
		f.Script(a)
	}
}

// RegisterStyle calls f.Style.
func (f SinkFuncs) RegisterStyle(a Asset) {
	if f.Style != nil {
		f.Style(a)
	}
}

// EnqueueStyle calls f.ActivateStyle.
func (f SinkFuncs) EnqueueStyle(handle string) {
	if f.ActivateStyle != nil {
		f.ActivateStyle(handle)
	}
}

// Compile-time interface check.
var _ Sink = SinkFuncs{}
