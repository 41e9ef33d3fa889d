// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of dense
// storage and linear solves. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the relative pivot threshold used by LU:
	// a pivot p with |p| <= tol·max|a_ij| is treated as zero (ErrSingular).
	DefaultPivotTolerance = 1e-12

	// DefaultConditionLimit is the largest accepted 1-norm condition estimate
	// for Inverse/Solve. Above it the system is rejected with ErrIllConditioned.
	DefaultConditionLimit = 1e12

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, in [0, 1)"
	panicConditionLimitInvalid = "matrix: WithConditionLimit: limit must be >= 1 (or +Inf to disable)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol       float64 // relative pivot threshold; DefaultPivotTolerance
	conditionLimit float64 // >= 1 or +Inf; DefaultConditionLimit
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the relative pivot threshold used by LU.
// Implementation:
//   - Stage 1: validate tol is finite and 0 <= tol < 1.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 only rejects exactly zero pivots.
//   - Larger tol rejects more near-degenerate geometry; use judiciously.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithConditionLimit sets the largest accepted condition estimate.
// Passing math.Inf(1) disables the condition check (pivot check still applies).
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || limit < 1 {
		panic(panicConditionLimitInvalid)
	}

	return func(o *Options) { o.conditionLimit = limit }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance returns the effective relative pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ConditionLimit returns the effective condition limit (+Inf when disabled).
func (o Options) ConditionLimit() float64 { return o.conditionLimit }

// ValidateNaNInf reports whether the finite-only policy is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		conditionLimit: DefaultConditionLimit,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order
		}
	}

	return o
}
