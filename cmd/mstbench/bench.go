// File: bench.go
// Role: `mstbench bench` — times repeat compute_mst runs per algorithm,
// optionally configured via --config.
package main

import (
	"fmt"
	"io"
	"time"

	"github.com/mstlab/tpmverify/graphio"
	"github.com/mstlab/tpmverify/mst"
	"github.com/mstlab/tpmverify/mstjson"
)

const defaultRepeat = 10

func runBench(out io.Writer, args []string) error {
	path, filter, configPath, err := parseGraphArgs(args)
	if err != nil {
		return err
	}

	g, err := loadGraph(path)
	if err != nil {
		return err
	}

	repeat := defaultRepeat
	if configPath != "" {
		cfg, err := graphio.LoadBenchConfig(configPath)
		if err != nil {
			return err
		}
		if len(filter) == 0 {
			filter = cfg.Filter
		}
		if cfg.Repeat > 0 {
			repeat = cfg.Repeat
		}
	}

	names := filter
	if len(names) == 0 {
		names = mst.Names()
	}

	opts := mst.DefaultRunOptions()
	report := make(mstjson.BenchReport, len(names))
	for _, name := range names {
		fn, ok := mst.Registry[name]
		if !ok {
			return fmt.Errorf("mstbench: %w: %s", mst.ErrUnknownAlgorithm, name)
		}

		start := time.Now()
		for i := 0; i < repeat; i++ {
			if _, err := fn(g, opts); err != nil {
				return fmt.Errorf("mstbench: %s: %w", name, err)
			}
		}
		report[name] = float64(time.Since(start).Microseconds()) / float64(repeat)
	}

	return mstjson.Write(out, report)
}
