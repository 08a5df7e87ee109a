// Package snapfit is a weighted linear least-squares core for fitting
// per-type coefficients of linear interatomic potentials against
// reference energies, forces and stresses.
//
// 🚀 What is snapfit?
//
//	A small, deterministic fitting library that brings together:
//		• Dataset model: per-configuration atoms, references, descriptors & weights
//		• Offset encodings: per-type fractional one-hot and zero columns
//		• Subsystem assembly: energy, force and virial design matrices
//		• Composition: stacked combined systems in fixed subsystem order
//		• Solvers: OLS, ridge, lasso, elastic net and SGD estimators
//		• Error statistics: weighted metrics, group tables, CV splits, residuals
//
// ✨ Why choose snapfit?
//
//   - Predictable – fixed row orders, seeded randomness, stable table sorts
//   - Rock-solid guarantees – sentinel errors, validated inputs, in-code docs
//   - Tolerant – non-finite data is reported, never silently fatal
//   - Extensible – estimators are plain functions; plug in your own
//
// Under the hood, everything is organized under four subpackages:
//
//	dataset/ — configuration sets, ragged per-atom storage, group splits
//	linsys/  — block matrices, offset columns, subsystem assembly & stacking
//	solver/  — weighted solve pipeline with pluggable estimators
//	errstat/ — error metrics, per-group tables and residual extraction
//
// Quick sketch of the pipeline:
//
//	ConfigSet ─▶ linsys.Compose ─▶ solver.Solve ─▶ errstat.GroupErrors
//
// Dive into each package's doc.go for the exact shapes, invariants and
// error taxonomy.
//
//	go get github.com/katalvlaran/snapfit
package snapfit
