package packassets

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-packassets/internal/fileutil"
)

// MaxManifestSize limits manifest documents to prevent memory exhaustion (2MB).
var MaxManifestSize int64 = 2 << 20

// defaultManifestTimeout bounds a network manifest fetch.
const defaultManifestTimeout = 5 * time.Second

// newManifestClient returns the HTTP client used for manifest fetches.
// Certificate verification is off: development servers commonly use
// self-signed certificates and the manifest only carries asset paths.
func newManifestClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- manifest fetch only
	return &http.Client{Timeout: timeout, Transport: transport}
}

// manifestLocation returns where the manifest lives for env, or "" when no
// manifest is configured.
func manifestLocation(cfg Configuration, env Environment, base string) string {
	if cfg.ManifestPath() == "" {
		return ""
	}
	if env == Production && cfg.ProductionFilePath() != "" {
		return filepath.Join(cfg.ProductionFilePath(), filepath.FromSlash(cfg.ManifestPath()))
	}
	return base + cfg.ManifestPath()
}

// loadManifest reads and parses the manifest at location.
// Every failure wraps ErrManifestLoad.
func loadManifest(ctx context.Context, client *http.Client, location string) (Manifest, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: no manifest configured", ErrManifestLoad)
	}

	var (
		data []byte
		err  error
	)
	if fileutil.IsURL(location) {
		data, err = fetchManifest(ctx, client, location)
	} else {
		data, err = readManifestFile(location)
	}
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

func fetchManifest(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestLoad, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestLoad, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrManifestLoad, location, resp.Status)
	}

	return readLimited(resp.Body, location)
}

func readManifestFile(location string) ([]byte, error) {
	if !fileutil.FileExists(location) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrManifestLoad, location)
	}
	f, err := os.Open(location) // #nosec G304 -- location comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestLoad, err)
	}
	defer func() { _ = f.Close() }()

	return readLimited(f, location)
}

func readLimited(r io.Reader, location string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxManifestSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrManifestLoad, location, err)
	}
	if int64(len(data)) > MaxManifestSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrManifestLoad, location, MaxManifestSize)
	}
	return data, nil
}
