// Package errstat computes residual and summary statistics for fitted
// coefficient matrices, globally and partitioned by data group, physical
// subsystem, and weighting scheme.
//
// Compute produces one error record for a coefficient matrix against one
// subsystem: predictions are the flattened design matrix times the
// flattened coefficients, and the statistics are mae, rmae (mae over the
// mean absolute deviation from the median), ssr/mse/rmse, rrmse (rmse over
// the population standard deviation of the targets), and rsq. With weights,
// both the targets and the predictions are multiplied elementwise by w
// before any statistic, and the sample count dividing the means is the
// number of strictly-positive weights rather than the row count.
//
// That divisor convention is statistically exact only for 0/1 weights (the
// cross-validation masks); for general positive weights it is kept anyway,
// deliberately, so reported numbers stay comparable with the reference
// implementation this package mirrors. A true weighted mean (Σw·y/Σw) would
// shift every metric.
//
// GroupErrors tabulates records per (Group, Weighting, Subsystem) cell:
// each group label becomes a sub-dataset, a synthetic "*ALL" group spans
// the full dataset whenever more than one real group exists, and every
// selected subsystem (plus the combined system) is scored both weighted and
// unweighted. With test-error reporting enabled, two more rows per weighted
// cell decompose the error into fitted rows (weight > 0, remapped to an
// exact 1.0 mask) and held-out rows (the complementary mask) — the
// train/test split under a sparsified-weighting training scheme.
//
// All functions are pure: coefficient matrices, datasets, and subsystems
// are read-only inputs, and each call returns freshly allocated results.
package errstat
