package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	assetpipe "github.com/alnah/go-assetpipe"
	"github.com/alnah/go-assetpipe/internal/config"
	"github.com/alnah/go-assetpipe/internal/fileutil"
	"github.com/alnah/go-assetpipe/internal/hints"
	"github.com/alnah/go-assetpipe/internal/yamlutil"
)

// runInit writes a sample manifest.
// Usage: assetpipe init [flags]
func runInit(args []string, env *Environment) error {
	flags, err := parseInitFlags(args, env)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if fileutil.FileExists(flags.output) && !flags.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrManifestExists, flags.output)
	}
	if dir := filepath.Dir(flags.output); !fileutil.DirExists(dir) {
		return fmt.Errorf("directory %s: %w%s", dir, os.ErrNotExist, hints.ForOutput())
	}

	data, err := yamlutil.Marshal(sampleManifest())
	if err != nil {
		return err
	}
	if err := os.WriteFile(flags.output, data, 0o644); err != nil { // #nosec G306 -- manifest is not secret
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Wrote %s\n", flags.output)
	}
	return nil
}

// sampleManifest returns a small manifest showing every feature.
func sampleManifest() *config.Manifest {
	m := config.DefaultManifest()
	m.Containers[assetpipe.DefaultContainer] = config.ContainerConfig{
		Styles: []config.AssetConfig{
			{Name: "site", Source: "css/site.css"},
			{Name: "print", Source: "css/print.css", Dependencies: []string{"site"}, Attributes: map[string]string{"media": "print"}},
		},
		Scripts: []config.AssetConfig{
			{Name: "jquery", Source: "https://code.jquery.com/jquery-3.7.1.min.js"},
			{Name: "app", Source: "js/app.js", Dependencies: []string{"jquery"}, Attributes: map[string]string{"defer": "defer"}},
		},
	}
	m.Containers["admin"] = config.ContainerConfig{
		Prefix: "/admin",
		Scripts: []config.AssetConfig{
			{Name: "admin", Source: "js/admin.js"},
		},
	}
	return m
}
