// SPDX-License-Identifier: MIT

package app

import (
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// StdinPath as Config.Input reads the edge list from standard input.
const StdinPath = "-"

// Config is a static struct for one spanforest run.
type Config struct {
	// Input is the edge-list file; StdinPath or empty means standard input.
	Input string
	// Method is prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim.
	Method string
	// Root is the Prim start vertex. Empty means every component.
	Root string
	// Verbose enables debug logging of every accepted and discarded edge.
	Verbose bool

	// Logger overrides the logger built from Verbose.
	Logger *zap.Logger
}

func (c *Config) ensureDefaults() {
	if c.Input == "" {
		c.Input = StdinPath
	}
	c.Method = strings.ToLower(strings.TrimSpace(c.Method))
	if c.Method == "" {
		c.Method = prim_kruskal.MethodKruskal
	}
}
