// SPDX-License-Identifier: MIT
// Package: lvlroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not construct a topology
// (nil constructor, or a core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")
