// Package dataset: the ConfigSet column table and its row-selection methods.

package dataset

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ConfigSet is the column-oriented table of training configurations.
// Every exported field is a column with exactly Len() entries; ragged
// columns (Forces, RefForces) carry one chunk per configuration.
//
// Descriptor columns:
//
//   - BSum[i] is the per-configuration energy descriptor, NTypes×NCoeff.
//   - DBAtom[i] is the force descriptor gradient with the (type, coeff)
//     axes flattened row-major, 3·NumAtoms[i] rows × NTypes·NCoeff columns
//     (atom-major, then x/y/z component).
//   - VBSum[i] is the virial descriptor sum, 6 rows × NTypes·NCoeff columns
//     in Voigt row order.
//
// A validated ConfigSet is immutable by convention: every consumer in this
// module reads it and produces fresh outputs. Descriptor blocks are shared
// (not copied) by Select/ByGroup for that reason.
type ConfigSet struct {
	NumAtoms  []int     // atoms per configuration, > 0
	AtomTypes [][]int   // 1-indexed type ids, len == NumAtoms[i]
	Energy    []float64 // total energy per configuration
	RefEnergy []float64 // reference-potential energy per configuration
	Volume    []float64 // cell volume per configuration, > 0

	Stress    [][3][3]float64 // full 3×3 stress tensor per configuration
	RefStress [][6]float64    // reference stress, Voigt (xx,yy,zz,yz,xz,xy)

	Forces    *Ragged // 3·NumAtoms[i] force components per configuration
	RefForces *Ragged // reference force components, same layout

	BSum   []*mat.Dense // energy descriptor, NTypes×NCoeff
	DBAtom []*mat.Dense // force descriptor, 3·NumAtoms[i] × NTypes·NCoeff
	VBSum  []*mat.Dense // virial descriptor, 6 × NTypes·NCoeff

	EWeight []float64 // energy row weight, ≥ 0
	FWeight []float64 // force row weight, ≥ 0
	VWeight []float64 // virial row weight, ≥ 0

	Group []string // provenance/weighting partition label

	NTypes int // atom types in the fit, constant across the set
	NCoeff int // descriptor coefficients per type, constant across the set
}

// Len returns the number of configurations in the set.
// Complexity: O(1).
func (cs *ConfigSet) Len() int {
	if cs == nil {
		return 0
	}

	return len(cs.NumAtoms)
}

// TotalAtoms returns the summed atom count over all configurations.
// Complexity: O(Len).
func (cs *ConfigSet) TotalAtoms() int {
	if cs == nil {
		return 0
	}
	var n int
	for _, na := range cs.NumAtoms {
		n += na
	}

	return n
}

// Validate checks every structural invariant of the set and returns the
// first violated one as a package sentinel. A nil error means the set is
// safe for assembly.
//
// Checked, in order:
//  1. non-nil, non-empty set; positive NTypes/NCoeff;
//  2. every column has exactly Len entries (ErrColumnLength);
//  3. per configuration: NumAtoms > 0 and len(AtomTypes) == NumAtoms
//     (ErrAtomCount); type ids in [1, NTypes] (ErrBadTypeID);
//     Volume > 0 (ErrBadVolume); weights ≥ 0 (ErrNegativeWeight);
//     descriptor block dimensions (ErrDescriptorShape); ragged force
//     chunks of length 3·NumAtoms (ErrChunkMismatch).
//
// Complexity: O(total atoms).
func (cs *ConfigSet) Validate() error {
	// 1) Presence and global shape parameters.
	if cs == nil {
		return ErrNilConfigSet
	}
	n := cs.Len()
	if n == 0 {
		return ErrEmptyConfigSet
	}
	if cs.NTypes <= 0 || cs.NCoeff <= 0 {
		return ErrDescriptorShape
	}

	// 2) Column lengths.
	if len(cs.AtomTypes) != n || len(cs.Energy) != n || len(cs.RefEnergy) != n ||
		len(cs.Volume) != n || len(cs.Stress) != n || len(cs.RefStress) != n ||
		len(cs.BSum) != n || len(cs.DBAtom) != n || len(cs.VBSum) != n ||
		len(cs.EWeight) != n || len(cs.FWeight) != n || len(cs.VWeight) != n ||
		len(cs.Group) != n || cs.Forces.Len() != n || cs.RefForces.Len() != n {
		return ErrColumnLength
	}

	// 3) Per-configuration invariants.
	width := cs.NTypes * cs.NCoeff
	var (
		i, na, r, c int
	)
	for i = 0; i < n; i++ {
		na = cs.NumAtoms[i]
		if na <= 0 || len(cs.AtomTypes[i]) != na {
			return ErrAtomCount
		}
		for _, t := range cs.AtomTypes[i] {
			if t < 1 || t > cs.NTypes {
				return ErrBadTypeID
			}
		}
		if cs.Volume[i] <= 0 {
			return ErrBadVolume
		}
		if cs.EWeight[i] < 0 || cs.FWeight[i] < 0 || cs.VWeight[i] < 0 {
			return ErrNegativeWeight
		}
		if cs.BSum[i] == nil || cs.DBAtom[i] == nil || cs.VBSum[i] == nil {
			return ErrDescriptorShape
		}
		if r, c = cs.BSum[i].Dims(); r != cs.NTypes || c != cs.NCoeff {
			return ErrDescriptorShape
		}
		if r, c = cs.DBAtom[i].Dims(); r != 3*na || c != width {
			return ErrDescriptorShape
		}
		if r, c = cs.VBSum[i].Dims(); r != 6 || c != width {
			return ErrDescriptorShape
		}
		if cs.Forces.ChunkLen(i) != 3*na || cs.RefForces.ChunkLen(i) != 3*na {
			return ErrChunkMismatch
		}
	}

	return nil
}

// Select returns a new ConfigSet holding the configurations at the given
// indices, in index order. Scalar and fixed-size columns are copied; the
// large descriptor blocks are shared with the receiver (read-only by
// convention). The receiver is never mutated.
// Returns ErrIndexRange when any index is outside [0, Len).
// Complexity: O(selected rows) plus the ragged copies.
func (cs *ConfigSet) Select(indices []int) (*ConfigSet, error) {
	if cs == nil {
		return nil, ErrNilConfigSet
	}
	n := cs.Len()
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, ErrIndexRange
		}
	}

	out := &ConfigSet{
		NumAtoms:  make([]int, len(indices)),
		AtomTypes: make([][]int, len(indices)),
		Energy:    make([]float64, len(indices)),
		RefEnergy: make([]float64, len(indices)),
		Volume:    make([]float64, len(indices)),
		Stress:    make([][3][3]float64, len(indices)),
		RefStress: make([][6]float64, len(indices)),
		BSum:      make([]*mat.Dense, len(indices)),
		DBAtom:    make([]*mat.Dense, len(indices)),
		VBSum:     make([]*mat.Dense, len(indices)),
		EWeight:   make([]float64, len(indices)),
		FWeight:   make([]float64, len(indices)),
		VWeight:   make([]float64, len(indices)),
		Group:     make([]string, len(indices)),
		NTypes:    cs.NTypes,
		NCoeff:    cs.NCoeff,
	}
	for k, i := range indices {
		out.NumAtoms[k] = cs.NumAtoms[i]
		out.AtomTypes[k] = append([]int(nil), cs.AtomTypes[i]...)
		out.Energy[k] = cs.Energy[i]
		out.RefEnergy[k] = cs.RefEnergy[i]
		out.Volume[k] = cs.Volume[i]
		out.Stress[k] = cs.Stress[i]
		out.RefStress[k] = cs.RefStress[i]
		out.BSum[k] = cs.BSum[i]
		out.DBAtom[k] = cs.DBAtom[i]
		out.VBSum[k] = cs.VBSum[i]
		out.EWeight[k] = cs.EWeight[i]
		out.FWeight[k] = cs.FWeight[i]
		out.VWeight[k] = cs.VWeight[i]
		out.Group[k] = cs.Group[i]
	}

	var err error
	if out.Forces, err = cs.Forces.Select(indices); err != nil {
		return nil, err
	}
	if out.RefForces, err = cs.RefForces.Select(indices); err != nil {
		return nil, err
	}

	return out, nil
}

// Groups returns the distinct group labels of the set in ascending order.
// The sorted order makes downstream iteration deterministic.
// Complexity: O(Len log Len).
func (cs *ConfigSet) Groups() []string {
	if cs == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(cs.Group))
	out := make([]string, 0, len(cs.Group))
	for _, g := range cs.Group {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

// ByGroup partitions the set by group label: each returned sub-set holds
// exactly the configurations carrying that label, in original row order.
// Returns ErrNilConfigSet for a nil receiver.
// Complexity: O(Len) selection work per group.
func (cs *ConfigSet) ByGroup() (map[string]*ConfigSet, error) {
	if cs == nil {
		return nil, ErrNilConfigSet
	}

	indices := make(map[string][]int)
	for i, g := range cs.Group {
		indices[g] = append(indices[g], i)
	}

	out := make(map[string]*ConfigSet, len(indices))
	var err error
	for g, idx := range indices {
		if out[g], err = cs.Select(idx); err != nil {
			return nil, err
		}
	}

	return out, nil
}
