package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpipe <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Print the style and script tags of a container")
	fmt.Fprintln(w, "  graph      Print a container's dependency graph (Graphviz DOT)")
	fmt.Fprintln(w, "  check      Report unknown dependencies and cycles")
	fmt.Fprintln(w, "  init       Write a sample manifest")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'assetpipe help <command>' for details on a specific command.")
}

// printManifestFlags prints the flags shared by manifest-reading commands.
func printManifestFlags(w io.Writer) {
	fmt.Fprintln(w, "Manifest:")
	fmt.Fprintln(w, "  -m, --manifest <name>     Manifest name or path (.yaml, .yml, .toml)")
	fmt.Fprintln(w, "                            Default: $ASSETPIPE_MANIFEST, then \"assets\"")
	fmt.Fprintln(w, "                            Names are searched in ./ and the user config dir")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose             Show manifest path and timing")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpipe render [container] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the tags of a container in dependency order, scripts first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  container    Container name (default: \"default\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -t, --type <s>            Asset type: all, styles, scripts (default: all)")
	fmt.Fprintln(w, "  -p, --prefix <s>          Path prefix for rendered URLs")
	fmt.Fprintln(w, "      --versioning          Append cache-busting fingerprints")
	fmt.Fprintln(w, "      --fingerprint <s>     Fingerprint mode: mtime, content")
	fmt.Fprintln(w, "      --root <dir>          Directory local assets are read from ($ASSETPIPE_ROOT)")
	fmt.Fprintln(w, "      --strict              Fail on unknown dependencies and cycles")
	fmt.Fprintln(w)
	printManifestFlags(w)
}

// printGraphUsage prints usage for the graph command.
func printGraphUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpipe graph [container] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the dependency graph of a container in Graphviz DOT format.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Graph:")
	fmt.Fprintln(w, "  -t, --type <s>            Asset type: styles, scripts (default: scripts)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w)
	printManifestFlags(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpipe check [container...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report unknown dependencies and dependency cycles. Checks every")
	fmt.Fprintln(w, "container when none is named. Exits with status 4 on problems.")
	fmt.Fprintln(w)
	printManifestFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpipe init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a sample YAML manifest.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Manifest file (default: assets.yaml)")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
	fmt.Fprintln(w, "  -v, --verbose             Show the written path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "graph":
		printGraphUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: assetpipe version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
	}
}
