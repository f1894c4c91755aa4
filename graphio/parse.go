// File: parse.go
// Role: Parse — the graph text format reader.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mstlab/tpmverify/core"
)

// ErrParse wraps a malformed-input failure: bad header, wrong field count,
// an unparseable integer/float, or an out-of-range vertex ID. The error
// message includes the offending line number and text.
var ErrParse = errors.New("graphio: parse error")

// Parse reads the graph text format from r: a first line `N M` (vertex
// count, edge count), followed by non-empty `u v w` lines with
// 0 <= u, v < N, u != v, and w a finite float. Duplicate unordered pairs
// are ignored — first occurrence wins, later duplicates are silently
// skipped rather than rejected, mirroring the original collaborator's
// "no trailing header information" leniency.
func Parse(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	nextLine := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, fmt.Errorf("%w: line %d: missing header", ErrParse, lineNo)
	}
	// M is declared but, per the original collaborator's own parser,
	// unused: every remaining non-empty line is read regardless of the
	// declared edge count.
	n, _, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %q: %v", ErrParse, lineNo, header, err)
	}

	g := core.NewGraph(n)
	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		u, v, w, err := parseEdgeLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %v", ErrParse, lineNo, line, err)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: line %d: %q: vertex out of range [0,%d)", ErrParse, lineNo, line, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: line %d: %q: self-loop not allowed", ErrParse, lineNo, line)
		}

		if _, err := g.AddEdge(u, v, w); err != nil {
			if errors.Is(err, core.ErrMultiEdge) {
				continue // first occurrence wins
			}
			return nil, fmt.Errorf("%w: line %d: %q: %v", ErrParse, lineNo, line, err)
		}
	}

	return g, scanner.Err()
}

func parseHeader(line string) (n, m int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"N M\", got %d fields", len(fields))
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("N: %w", err)
	}
	m, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("M: %w", err)
	}
	if n < 0 || m < 0 {
		return 0, 0, errors.New("N and M must be non-negative")
	}
	return n, m, nil
}

func parseEdgeLine(line string) (u, v int, w float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected \"u v w\", got %d fields", len(fields))
	}
	u, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("u: %w", err)
	}
	v, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("v: %w", err)
	}
	w, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("w: %w", err)
	}
	return u, v, w, nil
}
