// Command runtypec is a small demo/smoke-test binary, not a packaging
// CLI: it wires a hardcoded annotated module through the orchestrator and
// exercises the resulting descriptors against a handful of sample
// values, printing pass/fail diagnostics. It is the equivalent of
// escalier's own `cmd/escalier build` for this runtime — proof the
// pipeline holds together end to end, not a production compiler.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	checkConfig := checkCmd.String("config", "", "path to a YAML Configuration file")

	if len(os.Args) < 2 {
		fmt.Println("expected 'check' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		if err := checkCmd.Parse(os.Args[2:]); err != nil {
			fmt.Println("failed to parse check command")
			os.Exit(1)
		}
		if err := runCheck(os.Stdout, os.Stderr, *checkConfig); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Println("expected 'check' subcommand")
		os.Exit(1)
	}
}
