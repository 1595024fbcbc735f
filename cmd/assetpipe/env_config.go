package main

import (
	"fmt"
	"strings"
)

// Environment variable names.
const (
	envPrefix   = "ASSETPIPE_"
	envManifest = "ASSETPIPE_MANIFEST" // manifest name or path
	envRoot     = "ASSETPIPE_ROOT"     // fingerprint root directory
)

// defaultManifestName is searched for when neither a flag nor the environment
// names a manifest.
const defaultManifestName = "assets"

// knownEnvVars lists valid ASSETPIPE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envManifest: true,
	envRoot:     true,
}

// envConfig holds configuration from environment variables.
type envConfig struct {
	Manifest string
	Root     string
}

// loadEnvConfig reads the recognized ASSETPIPE_* values.
func loadEnvConfig(env *Environment) *envConfig {
	if env.Getenv == nil {
		return &envConfig{}
	}
	return &envConfig{
		Manifest: strings.TrimSpace(env.Getenv(envManifest)),
		Root:     strings.TrimSpace(env.Getenv(envRoot)),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized ASSETPIPE_* variable.
// Helps catch typos like ASSETPIPE_MANIFST.
func warnUnknownEnvVars(env *Environment) {
	if env.Environ == nil {
		return
	}
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// resolveManifest picks the manifest name or path.
// Priority: --manifest flag > ASSETPIPE_MANIFEST > "assets".
func resolveManifest(flagValue string, ec *envConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if ec.Manifest != "" {
		return ec.Manifest
	}
	return defaultManifestName
}
