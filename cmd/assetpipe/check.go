package main

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	assetpipe "github.com/alnah/go-assetpipe"
)

// checkedTypes are checked in render order.
var checkedTypes = []assetpipe.AssetType{assetpipe.Script, assetpipe.Style}

// runCheck reports unknown dependencies and cycles in one or all containers.
// Usage: assetpipe check [container...] [flags]
func runCheck(args []string, env *Environment) error {
	flags, positional, err := parseCheckFlags(args, env)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	factory, err := loadFactory(flags.common, env)
	if err != nil {
		return err
	}

	names := positional
	if len(names) == 0 {
		names = factory.Names()
	}

	problems := 0
	for _, name := range names {
		c, err := selectContainer(factory, []string{name})
		if err != nil {
			return err
		}
		for _, t := range checkedTypes {
			report, err := c.Check(t)
			if err != nil {
				return fmt.Errorf("checking %s %ss: %w", name, t, err)
			}
			problems += printReport(env, name, t, report)
		}
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrCheckFailed, problems)
	}
	fmt.Fprintf(env.Stdout, "OK: %d container(s) checked\n", len(names))
	return nil
}

// printReport prints one line per problem and returns the number printed.
func printReport(env *Environment, container string, t assetpipe.AssetType, r *assetpipe.DependencyReport) int {
	for _, m := range r.Missing {
		fmt.Fprintf(env.Stdout, "%s/%s: %q depends on unknown %q\n", container, t, m.Asset, m.Dependency)
	}
	for _, cycle := range r.Cycles {
		fmt.Fprintf(env.Stdout, "%s/%s: dependency cycle between %s\n", container, t, strings.Join(cycle, ", "))
	}
	return len(r.Missing) + len(r.Cycles)
}
