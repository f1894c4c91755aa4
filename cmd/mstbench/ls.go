// File: ls.go
// Role: `mstbench ls` — prints one algorithm name per line.
package main

import (
	"fmt"
	"io"

	"github.com/mstlab/tpmverify/mst"
)

func runLS(out io.Writer, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	for _, name := range mst.Names() {
		fmt.Fprintln(out, name)
	}
	return nil
}
