// Package solver fits coefficient matrices to weighted linear subsystems
// through a pluggable regression estimator.
//
// The estimator is a capability, not a hierarchy: a single function value
// taking the weighted design matrix and target vector and returning a flat
// coefficient vector plus run diagnostics. New builds one from a named Kind
// (OLS, Lasso, Ridge, Elastic-Net, SGD) and numeric hyperparameters, and
// validates the selection eagerly — misconfiguration surfaces at
// construction time, before any expensive assembly has happened.
//
// Solve applies the row weighting and shape conventions:
//
//  1. Non-finite values in A, b, or w are a data-quality diagnostic, not a
//     failure: each offending array is logged (zerolog, Nop by default) and
//     flagged in the Report, and the system is still submitted to the
//     estimator.
//  2. Every row of the flattened design matrix and every target element is
//     multiplied by its weight — the weighted normal-equation form
//     (wA)x = (wb), not a whitened √w form. Fresh copies are weighted; the
//     caller's subsystem is never mutated.
//  3. The flat solution is reshaped to (types × coeffs). When the system
//     was assembled without the offset column, a zero offset column is
//     reinserted so callers always receive (n_types, n_coeff+1) with
//     column 0 as the per-type constant.
//
// Every estimator fits without an intercept; the offset, when present, is
// an explicit descriptor column of the system.
//
// Determinism: the SGD estimator shuffles with a seeded local source
// (WithSeed); no estimator touches global randomness.
package solver
