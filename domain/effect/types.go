package effect

import (
	"painreliefmap/domain/core"
	"painreliefmap/domain/series"
)

// WindowKind distinguishes the two sides of an intervention split
type WindowKind string

const (
	WindowBefore WindowKind = "before"
	WindowAfter  WindowKind = "after"
)

// AnalysisWindow holds the observations for one target metric on one side of
// an intervention date. Ephemeral: it lives for a single analysis call.
// Dates are kept alongside values for traceability.
type AnalysisWindow struct {
	Kind   WindowKind    `json:"kind"`
	Metric series.Metric `json:"metric"`
	Dates  []core.Day    `json:"dates"`
	Values []float64     `json:"values"`
}

// N returns the number of observations in the window
func (w AnalysisWindow) N() int { return len(w.Values) }

// GateResult is the outcome of the minimum-sample-size policy check
type GateResult struct {
	OK         bool   `json:"ok"`
	NeedBefore int    `json:"need_before,omitempty"`
	NeedAfter  int    `json:"need_after,omitempty"`
	Shortfall  string `json:"shortfall_message,omitempty"`
}

// MagnitudeLabel buckets |Cohen's d| into the conventional effect sizes
type MagnitudeLabel string

const (
	MagnitudeNegligible MagnitudeLabel = "Negligible"
	MagnitudeSmall      MagnitudeLabel = "Small"
	MagnitudeMedium     MagnitudeLabel = "Medium"
	MagnitudeLarge      MagnitudeLabel = "Large"
)

// Estimate holds the parametric point estimates for a before/after split.
// TStatistic, PValue and CohensD are nil when a window has zero variance:
// the underlying formulas are degenerate there and reporting NaN would leak
// into callers.
type Estimate struct {
	MeanBefore     float64  `json:"mean_before"`
	MeanAfter      float64  `json:"mean_after"`
	AbsoluteEffect float64  `json:"absolute_effect"`
	PercentEffect  *float64 `json:"percent_effect,omitempty"`

	TStatistic *float64 `json:"t_statistic,omitempty"`
	PValue     *float64 `json:"p_value,omitempty"`
	CohensD    *float64 `json:"cohens_d,omitempty"`

	Magnitude          MagnitudeLabel `json:"effect_magnitude_label,omitempty"`
	DegenerateVariance bool           `json:"degenerate_variance,omitempty"`
}

// Interval is a bootstrap percentile confidence interval around the mean
// difference
type Interval struct {
	Low        float64 `json:"ci_low"`
	High       float64 `json:"ci_high"`
	Confidence float64 `json:"confidence"`
	Iterations int     `json:"iterations"`
}

// ExcludesZero reports whether zero lies strictly outside the interval
func (iv Interval) ExcludesZero() bool {
	return iv.Low > 0 || iv.High < 0
}

// Status describes whether an analysis produced numbers or was gated
type Status string

const (
	StatusComputed         Status = "Computed"
	StatusInsufficientData Status = "Insufficient_Data"
)

// Result is the engine's output contract for one (therapy, metric) analysis.
// When Status is Insufficient_Data only the counts and the shortfall message
// are populated; every numeric pointer is nil. Results are owned by the
// caller and never retained by the engine.
type Result struct {
	Therapy series.TherapyName `json:"therapy_name"`
	Metric  series.Metric      `json:"metric_name"`
	Status  Status             `json:"status"`

	NBefore int `json:"n_before"`
	NAfter  int `json:"n_after"`

	Shortfall string `json:"shortfall_message,omitempty"`

	MeanBefore     *float64 `json:"mean_before,omitempty"`
	MeanAfter      *float64 `json:"mean_after,omitempty"`
	AbsoluteEffect *float64 `json:"absolute_effect,omitempty"`
	PercentEffect  *float64 `json:"percent_effect,omitempty"`

	TStatistic *float64 `json:"t_statistic,omitempty"`
	PValue     *float64 `json:"p_value,omitempty"`

	CohensD   *float64       `json:"cohens_d,omitempty"`
	Magnitude MagnitudeLabel `json:"effect_magnitude_label,omitempty"`

	BootstrapCILow  *float64 `json:"bootstrap_ci_low,omitempty"`
	BootstrapCIHigh *float64 `json:"bootstrap_ci_high,omitempty"`

	Significant        bool   `json:"is_significant"`
	DegenerateVariance bool   `json:"degenerate_variance,omitempty"`
	Interpretation     string `json:"interpretation,omitempty"`
}

// Computed reports whether the result carries statistics
func (r Result) Computed() bool { return r.Status == StatusComputed }
