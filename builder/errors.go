// SPDX-License-Identifier: MIT
// Package: greenwave/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; sentinels carry no parameters.

package builder

import "errors"

// ErrTooFewVertices indicates the network is too small for the requested topology
// (e.g., Ring on fewer than 3 vertices).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrDegreeRange indicates a degree interval that is empty, starts below one, or
// exceeds n-1 (a simple graph cannot give a vertex more neighbors).
var ErrDegreeRange = errors.New("builder: invalid degree range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator received an unusable constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
