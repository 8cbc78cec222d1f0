// SPDX-License-Identifier: MIT

// Package app runs one spanning-forest computation for the spanforest command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
	"github.com/katalvlaran/spanforest/internal/edgelist"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// Run is the main entry function of the spanforest logic. It reads the edge
// list named by cfg.Input, computes its minimum spanning forest and writes the
// forest to out as an edge list followed by a summary comment line.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	cfg.ensureDefaults()

	logger := cfg.Logger
	if logger == nil {
		var err error
		if logger, err = NewLogger(cfg.Verbose); err != nil {
			return errors.Trace(err)
		}
		defer func() { _ = logger.Sync() }()
	}

	g, err := readGraph(cfg.Input)
	if err != nil {
		return errors.Trace(err)
	}
	logger.Debug("graph loaded",
		zap.String("input", cfg.Input),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()))

	if err = ctx.Err(); err != nil {
		return errors.Trace(err)
	}

	opts := []prim_kruskal.Option[string]{
		prim_kruskal.WithMethod[string](cfg.Method),
		prim_kruskal.WithLogger[string](logger),
	}
	if cfg.Root != "" {
		if cfg.Method != prim_kruskal.MethodPrim {
			logger.Warn("root is ignored by this method", zap.String("method", cfg.Method))
		}
		opts = append(opts, prim_kruskal.WithRoot(cfg.Root))
	}
	forest, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(opts...))
	if err != nil {
		return errors.Annotatef(err, "method %s", cfg.Method)
	}

	trees, err := checkForest(forest)
	if err != nil {
		return errors.Trace(err)
	}

	if err = edgelist.Write(out, forest); err != nil {
		return errors.Trace(err)
	}
	total := strconv.FormatFloat(forest.TotalWeight(), 'g', -1, 64)
	if _, err = fmt.Fprintf(out, "# trees: %d, total weight: %s\n", trees, total); err != nil {
		return errors.Trace(err)
	}

	logger.Info("spanning forest written",
		zap.String("method", cfg.Method),
		zap.Int("edges", forest.EdgeCount()),
		zap.Int("trees", trees),
		zap.Float64("total", forest.TotalWeight()))

	return nil
}

func readGraph(path string) (*core.Graph[string, float64], error) {
	if path == StdinPath {
		return edgelist.Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()

	g, err := edgelist.Read(f)
	if err != nil {
		return nil, errors.Annotatef(err, "read %s", path)
	}

	return g, nil
}

// checkForest returns the number of trees in forest and fails if it has a cycle.
func checkForest(forest *core.Graph[string, float64]) (int, error) {
	cyclic, err := dfs.HasCycle(forest)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if cyclic {
		return 0, errors.New("spanning forest contains a cycle")
	}
	comps, err := dfs.Components(forest)
	if err != nil {
		return 0, errors.Trace(err)
	}

	return len(comps), nil
}
