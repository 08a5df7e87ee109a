// Package solver: the estimator registry.

package solver

import "fmt"

// New constructs the Estimator for the named kind with the given
// hyperparameters. The selection and every hyperparameter are validated
// here, at configuration time — an unsupported kind fails immediately with
// ErrUnknownEstimator, before any data has been assembled or weighted.
//
// Kinds:
//
//   - KindOLS:     direct QR least squares; near-singular systems are
//     solved anyway and flagged via Diagnostics.Condition.
//   - KindRidge:   normal equations with an L2 penalty (alpha), Cholesky
//     solve with a dense fallback.
//   - KindLasso:   cyclic coordinate descent with an L1 penalty (alpha).
//   - KindElastic: coordinate descent with the mixed penalty
//     (alpha, l1Ratio).
//   - KindSGD:     shuffled stochastic gradient descent with an adaptive
//     learning rate, early stopping, and optional prior warm start.
func New(kind Kind, opts ...Option) (Estimator, error) {
	o := gatherOptions(opts...)

	switch kind {
	case KindOLS:
		return olsEstimator(o), nil
	case KindRidge:
		return ridgeEstimator(o), nil
	case KindLasso:
		// Pure Lasso is the l1Ratio=1 corner of the Elastic-Net objective.
		return coordinateEstimator(o, 1), nil
	case KindElastic:
		return coordinateEstimator(o, o.l1Ratio), nil
	case KindSGD:
		return sgdEstimator(o), nil
	default:
		return nil, fmt.Errorf("New(%q): %w", string(kind), ErrUnknownEstimator)
	}
}
