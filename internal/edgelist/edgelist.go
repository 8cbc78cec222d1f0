// SPDX-License-Identifier: MIT

// Package edgelist reads and writes the whitespace-separated edge-list format
// used by the spanforest command.
//
// Each non-blank line is either
//
//	src dst weight
//
// describing one undirected edge, or a single vertex name declaring a vertex
// that may have no edges. Everything after '#' is a comment.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pingcap/errors"

	"github.com/katalvlaran/spanforest/core"
)

// ErrSyntax is the cause of every parse error returned by Read.
var ErrSyntax = errors.New("edgelist: syntax error")

// Read parses an edge list into an undirected graph. Vertices appear in order
// of first mention. Self-loops and parallel edges are kept as written.
func Read(r io.Reader) (*core.Graph[string, float64], error) {
	g := core.NewGraph[string, float64](core.WithLoops(), core.WithMultiEdges())

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
		case 1:
			g.AddVertex(fields[0])
		case 3:
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil || math.IsNaN(w) {
				return nil, errors.Annotatef(ErrSyntax, "line %d: bad weight %q", line, fields[2])
			}
			if _, err = g.AddEdge(fields[0], fields[1], w); err != nil {
				return nil, errors.Annotatef(err, "line %d", line)
			}
		default:
			return nil, errors.Annotatef(ErrSyntax, "line %d: want 1 or 3 fields, got %d", line, len(fields))
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	return g, nil
}

// Write prints every edge of g as "src dst weight", followed by one line per
// vertex without edges, so that Read(Write(g)) restores the same graph.
func Write[W core.Weight](w io.Writer, g *core.Graph[string, W]) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", e.From, e.To, formatWeight(e.Weight)); err != nil {
			return errors.Trace(err)
		}
	}
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			if _, err := fmt.Fprintln(bw, v); err != nil {
				return errors.Trace(err)
			}
		}
	}

	return errors.Trace(bw.Flush())
}

// formatWeight prints integers without a fraction and floats in their
// shortest exact form.
func formatWeight[W core.Weight](w W) string {
	switch v := any(w).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
