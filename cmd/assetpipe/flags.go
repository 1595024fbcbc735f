package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	manifest string
	verbose  bool
}

// renderFlags holds flags for the render command.
// The *Set fields record whether a flag was given explicitly, so that only
// explicit flags override manifest values.
type renderFlags struct {
	common        commonFlags
	kind          string
	prefix        string
	prefixSet     bool
	versioning    bool
	versioningSet bool
	strict        bool
	strictSet     bool
	fingerprint   string
	root          string
}

// graphFlags holds flags for the graph command.
type graphFlags struct {
	common commonFlags
	kind   string
	output string
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
}

// initFlags holds flags for the init command.
type initFlags struct {
	output  string
	force   bool
	verbose bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.manifest, "manifest", "m", "", "manifest name or path (default: $ASSETPIPE_MANIFEST or \"assets\")")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show manifest path and timing")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, env *Environment, usage func()) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = usage
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, env *Environment) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", env, func() { printRenderUsage(env.Stderr) })

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.kind, "type", "t", "all", "asset type: all, styles, scripts")
	fs.StringVarP(&f.prefix, "prefix", "p", "", "path prefix for rendered URLs")
	fs.BoolVar(&f.versioning, "versioning", false, "append cache-busting fingerprints")
	fs.BoolVar(&f.strict, "strict", false, "fail on unknown dependencies and cycles")
	fs.StringVar(&f.fingerprint, "fingerprint", "", "fingerprint mode: mtime, content")
	fs.StringVar(&f.root, "root", "", "directory local assets are read from")

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}

	f.prefixSet = fs.Changed("prefix")
	f.versioningSet = fs.Changed("versioning")
	f.strictSet = fs.Changed("strict")

	return f, fs.Args(), nil
}

// parseGraphFlags parses graph command flags and returns positional args.
func parseGraphFlags(args []string, env *Environment) (*graphFlags, []string, error) {
	f := &graphFlags{}
	fs := newFlagSet("graph", env, func() { printGraphUsage(env.Stderr) })

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.kind, "type", "t", "scripts", "asset type: styles, scripts")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, env *Environment) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check", env, func() { printCheckUsage(env.Stderr) })

	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags.
func parseInitFlags(args []string, env *Environment) (*initFlags, error) {
	f := &initFlags{}
	fs := newFlagSet("init", env, func() { printInitUsage(env.Stderr) })

	fs.StringVarP(&f.output, "output", "o", defaultManifestName+".yaml", "manifest file to create")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing manifest")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show the written path")

	if err := fs.Parse(args); err != nil {
		return nil, wrapFlagError(err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: init takes no arguments", ErrUsage)
	}
	return f, nil
}

// wrapFlagError marks parse failures as usage errors. flag.ErrHelp is kept
// as is so commands can exit cleanly after printing usage.
func wrapFlagError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
