// svbench exercises small vectors from the command line.
//
// Usage:
//
//	svbench run [flags]     Apply a random grow/shrink workload to many vectors in parallel
//	svbench shell [flags]   Edit a single vector interactively
//	svbench help            Show this help
//
// Run "svbench run --help" for the workload flags. Every flag can also be
// given in a TOML or HuJSON file passed with --config.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "run":
		return cmdRun(args[1:], out, errOut)

	case "shell":
		return cmdShell(args[1:], out, errOut)

	case "help", "-h", "--help":
		printUsage(out)
		return 0

	default:
		fmt.Fprintf(errOut, "error: unknown command %q\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: svbench <command> [flags]

Commands:
  run     apply a random grow/shrink workload to many vectors in parallel
  shell   edit a single vector interactively
  help    show this help
`)
}
