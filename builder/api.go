// SPDX-License-Identifier: MIT
// Package: greenwave/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(n, nopts, bopts, cons...). Creates the
//     network, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/greenwave/core"
)

// Constructor adds streets to a network using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates a core.Network of size vertices with network options
// nopts, resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildNetwork: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildNetwork(size int, nopts []core.NetworkOption, bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n, err := core.NewNetwork(size, nopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return n, nil
}
