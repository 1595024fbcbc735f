package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	assetpipe "github.com/alnah/go-assetpipe"
	"github.com/alnah/go-assetpipe/internal/hints"
)

// runGraph writes the dependency graph of one container as Graphviz DOT.
// Usage: assetpipe graph [container] [flags]
func runGraph(args []string, env *Environment) error {
	flags, positional, err := parseGraphFlags(args, env)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: graph takes at most one container name", ErrUsage)
	}

	t, err := assetpipe.ParseAssetType(flags.kind)
	if err != nil {
		return err
	}

	factory, err := loadFactory(flags.common, env)
	if err != nil {
		return err
	}
	c, err := selectContainer(factory, positional)
	if err != nil {
		return err
	}

	var w io.Writer = env.Stdout
	if flags.output != "" {
		f, err := os.Create(flags.output) // #nosec G304 -- output path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutput())
		}
		defer f.Close()
		w = f
	}

	if err := c.WriteGraph(w, t); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if flags.common.verbose && flags.output != "" {
		fmt.Fprintf(env.Stderr, "Wrote %s graph of %q to %s\n", t, c.Name(), flags.output)
	}
	return nil
}
