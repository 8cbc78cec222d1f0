// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// TestDefaultOptions verifies the Kruskal default and a usable logger.
func TestDefaultOptions(t *testing.T) {
	opts := prim_kruskal.DefaultOptions[string]()
	assert.Equal(t, prim_kruskal.MethodKruskal, opts.Method)
	assert.False(t, opts.HasRoot)
	assert.NotNil(t, opts.Logger)

	opts = prim_kruskal.NewOptions(
		prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("B"),
		prim_kruskal.WithLogger[string](nil),
	)
	assert.Equal(t, prim_kruskal.MethodPrim, opts.Method)
	assert.Equal(t, "B", opts.Root)
	assert.True(t, opts.HasRoot)
	assert.NotNil(t, opts.Logger, "nil logger keeps the no-op default")
}

// TestCompute_Dispatch runs every method through Compute.
func TestCompute_Dispatch(t *testing.T) {
	g := buildGraph(t, []wedge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}, {"D", "E", 4}})

	mst, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions[string]())
	require.NoError(t, err)
	assert.Equal(t, 7, mst.TotalWeight())

	forest, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim)))
	require.NoError(t, err)
	assert.Equal(t, 7, forest.TotalWeight())
	assert.Equal(t, 3, forest.EdgeCount())

	rooted, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("E")))
	require.NoError(t, err)
	assert.Equal(t, []string{"D-E:4"}, edgeKeys(rooted.Edges()))

	_, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod[string]("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	// A zero-value MSTOptions has no method and no logger.
	_, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions[string]{})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestCompute_Logging verifies per-edge debug entries and the run summary.
func TestCompute_Logging(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := buildGraph(t, []wedge{
		{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}, {"C", "D", 4},
	})

	_, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithLogger[string](zap.New(obs))))
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("accept edge").Len())
	assert.Equal(t, 1, logs.FilterMessage("discard edge").Len())

	summary := logs.FilterMessage("kruskal finished").All()
	require.Len(t, summary, 1)
	assert.Equal(t, zapcore.InfoLevel, summary[0].Level)
	fields := summary[0].ContextMap()
	assert.EqualValues(t, 4, fields["vertices"])
	assert.EqualValues(t, 3, fields["accepted"])
	assert.EqualValues(t, 1, fields["trees"])
}
