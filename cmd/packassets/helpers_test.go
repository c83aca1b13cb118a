package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Config files and captured output
// ---------------------------------------------------------------------------

// testConfig is a production-only theme instance without a manifest.
const testConfig = `instances:
  theme:
    productionUrl: https://example.com
    version: "1.0"
    frontend:
      vendorScripts:
        - entry: vendor
      runtimeScripts:
        - entry: runtime
      applications:
        - entry: app
          dependencies: [wp-element]
    editor:
      scripts:
        - entry: editor
`

// writeConfig writes content to a config file in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packassets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// newTestEnv returns an Environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{Stdout: stdout, Stderr: stderr}, stdout, stderr
}

// run invokes runMain with "packassets" prepended.
func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	env, out, errOut := newTestEnv()
	code = runMain(append([]string{"packassets"}, args...), env)
	return code, out.String(), errOut.String()
}
