package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	assetpipe "github.com/alnah/go-assetpipe"
)

// ---------------------------------------------------------------------------
// TestRunRender - render command
// ---------------------------------------------------------------------------

func TestRunRender(t *testing.T) {
	t.Parallel()

	manifest := writeManifest(t, t.TempDir(), testManifest)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "scripts only",
			args: []string{"-t", "scripts"},
			want: `<script src="https://code.jquery.com/jquery.js"></script><script src="js/app.js"></script>` + "\n",
		},
		{
			name: "styles with prefix flag",
			args: []string{"--type", "css", "--prefix", "//cdn.example.com"},
			want: `<link href="//cdn.example.com/css/site.css" media="all" rel="stylesheet" type="text/css"/>` + "\n",
		},
		{
			name: "scripts then styles",
			args: []string{"default"},
			want: `<script src="https://code.jquery.com/jquery.js"></script><script src="js/app.js"></script>` +
				`<link href="css/site.css" media="all" rel="stylesheet" type="text/css"/>` + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			args := append([]string{"-m", manifest}, tt.args...)
			if err := runRender(args, env.Environment); err != nil {
				t.Fatalf("runRender() error = %v", err)
			}
			if got := env.stdout.String(); got != tt.want {
				t.Errorf("stdout = %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestRunRender_ManifestFromEnv(t *testing.T) {
	t.Parallel()

	manifest := writeManifest(t, t.TempDir(), testManifest)
	env := newTestEnv(map[string]string{envManifest: manifest})

	if err := runRender([]string{"-t", "styles", "-v"}, env.Environment); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if !strings.Contains(env.stdout.String(), "css/site.css") {
		t.Errorf("stdout = %q", env.stdout)
	}
	if !strings.Contains(env.stderr.String(), "Manifest: "+manifest) {
		t.Errorf("verbose output missing manifest path: %q", env.stderr)
	}
}

func TestRunRender_Versioning(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	public := filepath.Join(dir, "public", "js")
	if err := os.MkdirAll(public, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(public, "app.js")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Unix(1700000000, 0)
	if err := os.Chtimes(file, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	manifest := writeManifest(t, dir, `containers:
  default:
    scripts:
      - name: app
        source: js/app.js
`)

	env := newTestEnv(map[string]string{envRoot: filepath.Join(dir, "public")})
	if err := runRender([]string{"-m", manifest, "--versioning", "-t", "js"}, env.Environment); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	want := `<script src="js/app.js?1700000000"></script>` + "\n"
	if got := env.stdout.String(); got != want {
		t.Errorf("stdout = %s, want %s", got, want)
	}
}

func TestRunRender_Errors(t *testing.T) {
	t.Parallel()

	manifest := writeManifest(t, t.TempDir(), testManifest)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown container", []string{"-m", manifest, "missing"}, ErrUnknownContainer},
		{"too many containers", []string{"-m", manifest, "a", "b"}, ErrUsage},
		{"bad type", []string{"-m", manifest, "-t", "images"}, assetpipe.ErrInvalidAssetType},
		{"bad fingerprint", []string{"-m", manifest, "--fingerprint", "sha1"}, assetpipe.ErrInvalidFingerprint},
		{"strict failure", []string{"-m", manifest, "--strict", "broken"}, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			err := runRender(tt.args, env.Environment)
			if err == nil {
				t.Fatal("runRender() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("runRender() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && exitCodeFor(err) != ExitDependency {
				t.Errorf("exitCodeFor(%v) = %d, want %d", err, exitCodeFor(err), ExitDependency)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderOptions - flag and environment precedence
// ---------------------------------------------------------------------------

func TestRenderOptions(t *testing.T) {
	t.Parallel()

	t.Run("no explicit flags", func(t *testing.T) {
		t.Parallel()

		opts, err := renderOptions(&renderFlags{}, &envConfig{})
		if err != nil {
			t.Fatalf("renderOptions() error = %v", err)
		}
		if len(opts) != 0 {
			t.Errorf("renderOptions() returned %d options, want 0", len(opts))
		}
	})

	t.Run("explicit false overrides manifest", func(t *testing.T) {
		t.Parallel()

		opts, err := renderOptions(&renderFlags{versioningSet: true, strictSet: true}, &envConfig{})
		if err != nil {
			t.Fatalf("renderOptions() error = %v", err)
		}
		d := assetpipe.NewDispatcher(append([]assetpipe.DispatcherOption{
			assetpipe.WithVersioning(true),
			assetpipe.WithStrict(true),
		}, opts...)...)
		if d.Versioning() || d.Strict() {
			t.Error("explicit flags did not override earlier options")
		}
	})
}
