package main

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	before := time.Now()
	got := env.Now()
	if got.Before(before) {
		t.Errorf("Now() = %v, want >= %v", got, before)
	}
	if env.Stdout != os.Stdout || env.Stderr != os.Stderr {
		t.Error("DefaultEnv() should write to os.Stdout and os.Stderr")
	}
	if env.Getenv == nil || env.Environ == nil {
		t.Error("DefaultEnv() should read the process environment")
	}
}

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(map[string]string{
		envManifest: " site.toml ",
		envRoot:     "public",
	})
	got := loadEnvConfig(env.Environment)
	if got.Manifest != "site.toml" || got.Root != "public" {
		t.Errorf("loadEnvConfig() = %+v", got)
	}

	empty := loadEnvConfig(&Environment{})
	if empty.Manifest != "" || empty.Root != "" {
		t.Errorf("loadEnvConfig() without Getenv = %+v", empty)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	env := newTestEnv(map[string]string{
		envManifest:          "assets",
		"ASSETPIPE_MANIFST":  "typo",
		"UNRELATED_VARIABLE": "x",
	})
	warnUnknownEnvVars(env.Environment)

	out := env.stderr.String()
	if !strings.Contains(out, "ASSETPIPE_MANIFST") {
		t.Errorf("missing typo warning: %q", out)
	}
	if strings.Contains(out, envManifest+" ") || strings.Contains(out, "UNRELATED") {
		t.Errorf("unexpected warning: %q", out)
	}
}

func TestResolveManifest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{"flag wins", "flag.yaml", "env.yaml", "flag.yaml"},
		{"env fallback", "", "env.yaml", "env.yaml"},
		{"default name", "", "", defaultManifestName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveManifest(tt.flag, &envConfig{Manifest: tt.env}); got != tt.want {
				t.Errorf("resolveManifest() = %q, want %q", got, tt.want)
			}
		})
	}
}
