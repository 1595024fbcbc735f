package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// testEnv is an Environment backed by buffers and a fixed variable map.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return fixed },
			Stdout: stdout,
			Stderr: stderr,
			Getenv: func(k string) string { return vars[k] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				sort.Strings(out)
				return out
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

const testManifest = `strict: false
containers:
  default:
    styles:
      - name: site
        source: css/site.css
    scripts:
      - name: app
        source: js/app.js
        dependencies: [jquery]
      - name: jquery
        source: https://code.jquery.com/jquery.js
  broken:
    scripts:
      - name: app
        source: app.js
        dependencies: [missing]
      - name: a
        source: a.js
        dependencies: [b]
      - name: b
        source: b.js
        dependencies: [a]
`

// writeManifest writes content to dir/assets.yaml and returns its path.
func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "assets.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return p
}
