// Package dataset defines the in-memory, column-oriented configuration table
// consumed by the fitting core, together with the ragged containers needed
// for per-atom quantities.
//
// A ConfigSet holds one column per physical field (energies, forces, stress
// tensors, descriptor blocks, weights, group labels), with one entry per
// atomic configuration. Scalar and fixed-size columns are plain slices;
// force-related columns are ragged (their per-configuration length depends
// on the atom count) and are represented by the explicit Ragged container
// with a documented Flatten/Unflatten pair.
//
// Conventions:
//
//   - Atom type ids are 1-indexed: AtomTypes[i][k] ∈ [1, NTypes].
//   - Stress tensors are 3×3; reference stresses are 6-vectors in the fixed
//     Voigt ordering (xx, yy, zz, yz, xz, xy).
//   - Descriptor blocks are gonum mat.Dense values. The energy descriptor
//     BSum keeps its natural NTypes×NCoeff shape; the force and virial
//     descriptors store the (type, coefficient) axes flattened row-major
//     into NTypes·NCoeff columns, so downstream assembly can stack rows
//     without reshaping copies.
//   - NTypes and NCoeff are constant across every configuration in a set.
//
// All accessors are read-only with respect to the receiver: Select and
// ByGroup produce views-by-copy of the selected rows and never mutate the
// source set, because the same ConfigSet is reused across the combined
// system and every per-group system.
//
// Validation is fail-fast and sentinel-based: Validate reports the first
// violated invariant as one of the package-level errors, matched via
// errors.Is.
package dataset
