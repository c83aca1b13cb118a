package packassets

import "errors"

// Sentinel errors for library operations.
var (
	// ErrBaseURLRequired is returned by NewResolver when the production base
	// URL is blank. Callers are expected to log it and continue without assets.
	ErrBaseURLRequired = errors.New("base URL required for asset registration")

	// ErrManifestLoad wraps any failure to fetch, read, or parse a manifest.
	// The resolver recovers from it by treating the manifest as absent.
	ErrManifestLoad = errors.New("failed to load asset manifest")

	// ErrManifestFormat indicates a manifest entry holds an empty path list.
	// The resolver recovers from it by using the conventional URL.
	ErrManifestFormat = errors.New("invalid asset manifest entry")

	// ErrUnknownCategory indicates a registration category name is not recognized.
	ErrUnknownCategory = errors.New("unknown asset category")

	// ErrInstanceNotFound indicates a named resolver instance was never registered.
	ErrInstanceNotFound = errors.New("asset instance not registered")
)
