package main

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	assetpipe "github.com/alnah/go-assetpipe"
	"github.com/alnah/go-assetpipe/internal/config"
	"github.com/alnah/go-assetpipe/internal/hints"
)

// runRender prints the tags of one container.
// Usage: assetpipe render [container] [flags]
func runRender(args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: render takes at most one container name", ErrUsage)
	}

	opts, err := renderOptions(flags, loadEnvConfig(env))
	if err != nil {
		return err
	}

	start := env.Now()
	factory, err := loadFactory(flags.common, env, opts...)
	if err != nil {
		return err
	}
	c, err := selectContainer(factory, positional)
	if err != nil {
		return err
	}
	if flags.prefixSet {
		c.Prefix(flags.prefix)
	}

	var out string
	switch strings.ToLower(flags.kind) {
	case "all", "":
		out, err = c.Show()
	default:
		var t assetpipe.AssetType
		t, err = assetpipe.ParseAssetType(flags.kind)
		if err != nil {
			return err
		}
		if t == assetpipe.Style {
			out, err = c.Styles()
		} else {
			out, err = c.Scripts()
		}
	}
	if err != nil {
		return fmt.Errorf("container %q: %w%s", c.Name(), err, hints.ForDependency())
	}

	if _, err := fmt.Fprintln(env.Stdout, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendered container %q in %s\n", c.Name(), env.Now().Sub(start))
	}
	return nil
}

// renderOptions converts explicit flags and environment values into
// dispatcher options. Priority: flags > environment > manifest.
func renderOptions(f *renderFlags, ec *envConfig) ([]assetpipe.DispatcherOption, error) {
	var opts []assetpipe.DispatcherOption

	root := f.root
	if root == "" {
		root = ec.Root
	}
	if root != "" {
		opts = append(opts, assetpipe.WithRoot(root))
	}

	switch f.fingerprint {
	case "":
	case config.FingerprintModTime, config.FingerprintContent:
		opts = append(opts, assetpipe.WithFingerprintMode(assetpipe.FingerprintMode(f.fingerprint)))
	default:
		return nil, fmt.Errorf("%w: %q%s", assetpipe.ErrInvalidFingerprint, f.fingerprint,
			hints.ForFingerprint([]string{config.FingerprintModTime, config.FingerprintContent}))
	}

	if f.versioningSet {
		opts = append(opts, assetpipe.WithVersioning(f.versioning))
	}
	if f.strictSet {
		opts = append(opts, assetpipe.WithStrict(f.strict))
	}
	return opts, nil
}

// loadFactory loads the manifest named by flags or the environment.
func loadFactory(common commonFlags, env *Environment, opts ...assetpipe.DispatcherOption) (*assetpipe.Factory, error) {
	manifest := resolveManifest(common.manifest, loadEnvConfig(env))
	if common.verbose {
		fmt.Fprintf(env.Stderr, "Manifest: %s\n", manifest)
	}
	factory, err := assetpipe.LoadFactory(manifest, opts...)
	if errors.Is(err, assetpipe.ErrManifestNotFound) {
		return nil, fmt.Errorf("loading manifest: %w%s", err, hints.ForManifestNotFound(envManifest))
	}
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	return factory, nil
}

// selectContainer returns the container named by the first positional
// argument, or the default container.
func selectContainer(f *assetpipe.Factory, positional []string) (*assetpipe.Container, error) {
	name := assetpipe.DefaultContainer
	if len(positional) > 0 && positional[0] != "" {
		name = positional[0]
	}
	if !f.Has(name) {
		return nil, fmt.Errorf("%w: %q%s", ErrUnknownContainer, name, hints.ForUnknownContainer(f.Names()))
	}
	return f.Container(name), nil
}
