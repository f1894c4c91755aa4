// Command mstbench implements a command-line surface over the MST
// algorithm registry: test, bench, info, and ls sub-commands.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "test":
		err = runTest(os.Stdout, os.Stderr, os.Args[2:])
	case "bench":
		err = runBench(os.Stdout, os.Args[2:])
	case "info":
		err = runInfo(os.Stdout, os.Args[2:])
	case "ls":
		err = runLS(os.Stdout, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			usage()
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mstbench <test|bench|info|ls> <graph_path> [--filter name ...] [--config file.yaml]")
}
