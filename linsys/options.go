// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for subsystem assembly.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts assembly and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package linsys

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultEnergyConversion multiplies energy descriptor rows. The
	// dataset arrives already unit-converted by the ingestion collaborator,
	// so the default is the multiplicative identity.
	DefaultEnergyConversion = 1.0

	// DefaultForceConversion multiplies force descriptor rows; identity by
	// default for the same reason as the energy conversion.
	DefaultForceConversion = 1.0

	// NKTV2P converts the pressure-unit virial descriptor into the energy
	// units of the fit (LAMMPS metal-units nktv2p constant). Unlike the
	// energy/force conversions it is applied by default, because the virial
	// descriptor is natively accumulated in pressure units.
	NKTV2P = 1.6021765e6

	// DefaultVirialConversion is the default virial-row multiplier.
	DefaultVirialConversion = NKTV2P

	// DefaultOffset controls whether the per-type constant offset column is
	// added to the design matrices. Off by default: the offset widens the
	// coefficient axis and is an explicit modeling choice.
	DefaultOffset = false
)

// Internal panic messages (no magic strings).
const (
	panicConversionInvalid = "linsys: conversion must be finite and > 0"
)

// Option mutates internal assembly options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective assembly configuration after applying Option
// setters. It is intentionally unexported-field-only: public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	offset     bool     // DefaultOffset
	selector   Selector // SelectAll by default
	energyConv float64  // DefaultEnergyConversion
	forceConv  float64  // DefaultForceConversion
	virialConv float64  // DefaultVirialConversion
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		offset:     DefaultOffset,
		selector:   SelectAll(),
		energyConv: DefaultEnergyConversion,
		forceConv:  DefaultForceConversion,
		virialConv: DefaultVirialConversion,
	}
}

// WithOffset enables the per-type constant offset column: the energy
// subsystem gains the fractional one-hot column, force and virial gain an
// exactly-zero column, and fitted coefficients come back one column wider.
func WithOffset() Option {
	return func(o *Options) { o.offset = true }
}

// WithSelector restricts assembly to the enabled subsystems. An empty
// selector is a user error and is reported by Compose as ErrEmptySelector
// (not a panic: selectors are frequently data-driven).
func WithSelector(sel Selector) Option {
	return func(o *Options) { o.selector = sel }
}

// WithEnergyConversion sets the scalar multiplied into energy descriptor
// rows (the target vector is never scaled). Panics when c is non-finite or
// non-positive.
func WithEnergyConversion(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicConversionInvalid)
	}

	return func(o *Options) { o.energyConv = c }
}

// WithForceConversion sets the scalar multiplied into force descriptor
// rows. Panics when c is non-finite or non-positive.
func WithForceConversion(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicConversionInvalid)
	}

	return func(o *Options) { o.forceConv = c }
}

// WithVirialConversion overrides the pressure→energy conversion applied to
// virial descriptor rows (NKTV2P by default). Panics when c is non-finite
// or non-positive.
func WithVirialConversion(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicConversionInvalid)
	}

	return func(o *Options) { o.virialConv = c }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
