// File: args.go
// Role: shared argument parsing for test/bench/info.
package main

import (
	"errors"
	"strings"
)

// errUsage is returned for any argument/parse failure: any failure here
// means exit 1 with usage printed to stderr.
var errUsage = errors.New("mstbench: invalid arguments")

// parseGraphArgs splits args into the positional graph path, an optional
// --filter name list (consuming every following token up to the next flag),
// and an optional --config path.
func parseGraphArgs(args []string) (graphPath string, filter []string, config string, err error) {
	if len(args) == 0 {
		return "", nil, "", errUsage
	}
	graphPath = args[0]

	i := 1
	for i < len(args) {
		switch args[i] {
		case "--filter":
			i++
			for i < len(args) && !strings.HasPrefix(args[i], "--") {
				filter = append(filter, args[i])
				i++
			}
		case "--config":
			i++
			if i >= len(args) {
				return "", nil, "", errUsage
			}
			config = args[i]
			i++
		default:
			return "", nil, "", errUsage
		}
	}

	return graphPath, filter, config, nil
}
