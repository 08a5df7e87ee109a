// Package errstat: the group aggregation table.

package errstat

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snapfit/dataset"
	"github.com/katalvlaran/snapfit/linsys"
)

// Operation name constant for unified error wrapping.
const opGroupErrors = "GroupErrors"

// GroupErrors scores a fitted coefficient matrix per (Group, Weighting,
// Subsystem) cell and returns the sorted table.
//
// Stage 1 (Partition): split cs by group label. With more than one real
// group, add the synthetic AllGroups pseudo-group spanning the full set;
// a real group already named "*ALL" is ErrReservedGroup.
// Stage 2 (Assemble): re-assemble each group's selected subsystems with
// the offset column — fitted coefficients always carry the offset shape,
// so group systems must too. The combined system participates whenever
// more than one subsystem is selected.
// Stage 3 (Score): per subsystem, one Weighted row (the subsystem's own
// weight vector) and one Unweighted row; with WithTestErrors, additionally
// the CVTrain_Unweight mask row (weight > 0 → 1.0) and its CVTest_Unweight
// complement. A weighted cell whose weight vector has no positive entry
// (for example a fully held-out group's train mask) becomes a NaN-valued
// row with NCount 0 rather than failing the table.
// Stage 4 (Sort): rows ordered by the composite (Group, Weighting,
// Subsystem) string key.
//
// The dataset and coefficients are never mutated.
// Complexity: O(groups · total rows · types·coeffs).
func GroupErrors(x mat.Matrix, cs *dataset.ConfigSet, opts ...Option) (Table, error) {
	o := gatherOptions(opts...)

	if err := o.selector.Validate(); err != nil {
		return nil, wrapOp(opGroupErrors, err)
	}
	if err := cs.Validate(); err != nil {
		return nil, wrapOp(opGroupErrors, err)
	}

	// 1) Partition by group, with the synthetic all-groups span.
	groups, err := cs.ByGroup()
	if err != nil {
		return nil, wrapOp(opGroupErrors, err)
	}
	if len(groups) > 1 {
		if _, clash := groups[AllGroups]; clash {
			return nil, wrapOp(opGroupErrors, ErrReservedGroup)
		}
		groups[AllGroups] = cs
	}

	// Deterministic group order (the final sort would hide it, but error
	// paths and logs should be stable too).
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)

	var table Table
	for _, g := range names {
		o.logger.Debug().Str("group", g).Msg("scoring group")

		// 2) Per-group assembly with the offset column.
		systems, cerr := linsys.Compose(groups[g],
			linsys.WithOffset(), linsys.WithSelector(o.selector))
		if cerr != nil {
			return nil, wrapOp(opGroupErrors, cerr)
		}

		// 3) Score each subsystem under every weighting scheme.
		for _, sub := range systems {
			if table, err = appendRows(table, x, g, sub, o.testErrs); err != nil {
				return nil, wrapOp(opGroupErrors, err)
			}
		}
	}

	// 4) Composite-key sort.
	sort.Slice(table, func(i, j int) bool { return table[i].less(table[j]) })

	return table, nil
}

// appendRows scores one subsystem for one group and appends its rows.
func appendRows(table Table, x mat.Matrix, group string, sub linsys.Subsystem, testErrs bool) (Table, error) {
	// Weighted and unweighted rows.
	rec, err := computeTolerant(x, sub.A, sub.B, sub.W)
	if err != nil {
		return nil, err
	}
	table = append(table, Row{Group: group, Weighting: Weighted, Subsystem: sub.Kind, Record: rec})

	if rec, err = Compute(x, sub.A, sub.B); err != nil {
		return nil, err
	}
	table = append(table, Row{Group: group, Weighting: Unweighted, Subsystem: sub.Kind, Record: rec})

	if !testErrs {
		return table, nil
	}

	// CV decomposition: fitted rows carry weight > 0; the masks remap them
	// to exact 0/1 indicators so the two row sets are disjoint and their
	// union covers every row.
	train := make([]float64, len(sub.W))
	test := make([]float64, len(sub.W))
	for i, w := range sub.W {
		if w > 0 {
			train[i] = 1
		} else {
			test[i] = 1
		}
	}

	if rec, err = computeTolerant(x, sub.A, sub.B, train); err != nil {
		return nil, err
	}
	table = append(table, Row{Group: group, Weighting: CVTrainUnweight, Subsystem: sub.Kind, Record: rec})

	if rec, err = computeTolerant(x, sub.A, sub.B, test); err != nil {
		return nil, err
	}
	table = append(table, Row{Group: group, Weighting: CVTestUnweight, Subsystem: sub.Kind, Record: rec})

	return table, nil
}

// computeTolerant runs a weighted Compute, converting the all-zero-weight
// case into a NaN record so a single degenerate cell cannot sink the table.
func computeTolerant(x mat.Matrix, a *linsys.BlockMatrix, b, w []float64) (Record, error) {
	rec, err := Compute(x, a, b, WithWeights(w))
	if err == nil {
		return rec, nil
	}
	if errors.Is(err, ErrAllZeroWeights) {
		nan := math.NaN()

		return Record{MAE: nan, RMAE: nan, MSE: nan, RMSE: nan, RRMSE: nan, RSq: nan}, nil
	}

	return Record{}, err
}
