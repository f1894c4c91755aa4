package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTriangle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 3\n0 1 1.0\n1 2 2.0\n0 2 3.0\n"), 0o644))
	return path
}

func TestRunLS(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runLS(&out, nil))
	lines := strings.Fields(out.String())
	assert.Equal(t, []string{"kruskal", "prim_bin_heap", "prim_fib_heap", "boruvka", "random_KKT"}, lines)
}

func TestRunLSRejectsArgs(t *testing.T) {
	var out bytes.Buffer
	err := runLS(&out, []string{"unexpected"})
	assert.ErrorIs(t, err, errUsage)
}

func TestRunInfo(t *testing.T) {
	path := writeTriangle(t)
	var out bytes.Buffer
	require.NoError(t, runInfo(&out, []string{path}))
	assert.JSONEq(t, `{"connected": true, "unique_weights": true, "vertices": 3, "edges": 3}`, out.String())
}

func TestRunTest(t *testing.T) {
	path := writeTriangle(t)
	var out, errOut bytes.Buffer
	require.NoError(t, runTest(&out, &errOut, []string{path}))
	assert.JSONEq(t, `{
		"kruskal": true, "prim_bin_heap": true, "prim_fib_heap": true,
		"boruvka": true, "random_KKT": true
	}`, out.String())
}

func TestRunTestWithFilter(t *testing.T) {
	path := writeTriangle(t)
	var out, errOut bytes.Buffer
	require.NoError(t, runTest(&out, &errOut, []string{path, "--filter", "kruskal", "boruvka"}))
	assert.JSONEq(t, `{"kruskal": true, "boruvka": true}`, out.String())
}

func TestRunBench(t *testing.T) {
	path := writeTriangle(t)
	var out bytes.Buffer
	require.NoError(t, runBench(&out, []string{path, "--filter", "kruskal"}))
	assert.Contains(t, out.String(), "kruskal")
}

func TestRunBenchWithConfig(t *testing.T) {
	path := writeTriangle(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("filter:\n  - kruskal\nrepeat: 3\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runBench(&out, []string{path, "--config", cfgPath}))
	assert.Contains(t, out.String(), "kruskal")
}

func TestParseGraphArgsRejectsUnknownFlag(t *testing.T) {
	_, _, _, err := parseGraphArgs([]string{"graph.txt", "--nope"})
	assert.ErrorIs(t, err, errUsage)
}

func TestParseGraphArgsNoPositional(t *testing.T) {
	_, _, _, err := parseGraphArgs(nil)
	assert.ErrorIs(t, err, errUsage)
}
