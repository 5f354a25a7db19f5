package analysis

import (
	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
)

// Analyzer runs the full pipeline for a (therapy, metric) pair: split, gate,
// estimate, bootstrap, report. It is stateless and safe for concurrent use;
// given identical inputs and a fixed seed two calls produce identical
// results.
type Analyzer struct {
	opts effect.Options
}

// NewAnalyzer creates an analyzer with the given options, filling defaults
func NewAnalyzer(opts effect.Options) *Analyzer {
	return &Analyzer{opts: opts.Normalize()}
}

// Options returns the analyzer's effective configuration
func (a *Analyzer) Options() effect.Options {
	return a.opts
}

// AnalyzeTherapy computes the effect of one therapy on one metric. Usage
// errors (unknown metric, therapy never marked started) are returned as
// errors; insufficient data is a normal result with
// Status=Insufficient_Data, never an error, because early in any subject's
// tracking history that is the common case.
func (a *Analyzer) AnalyzeTherapy(s series.Series, metric series.Metric, therapy series.TherapyName) (effect.Result, error) {
	before, after, err := Split(s, metric, therapy)
	if err != nil {
		return effect.Result{}, err
	}

	gate := CheckSufficiency(before, after, a.opts)
	if !gate.OK {
		return AssembleReport(therapy, metric, gate, before.N(), after.N(), nil, nil, a.opts), nil
	}

	est := Estimate(before.Values, after.Values, a.opts)
	ci := BootstrapCI(before.Values, after.Values, a.opts)

	return AssembleReport(therapy, metric, gate, before.N(), after.N(), &est, &ci, a.opts), nil
}

// Correlations computes pairwise Pearson associations across the tracked
// metrics over the whole series, surfacing candidate confounders and
// co-movements for the insights list.
func (a *Analyzer) Correlations(s series.Series, metrics []series.Metric) []MetricCorrelation {
	if len(metrics) == 0 {
		metrics = series.KnownMetrics()
	}
	return Correlate(s, metrics, DefaultMinOverlap)
}
