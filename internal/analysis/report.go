package analysis

import (
	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
)

type interpretationKey struct {
	magnitude   effect.MagnitudeLabel
	significant bool
}

// interpretations is a fixed template table keyed on magnitude x
// significance. Selection is a pure lookup so reports stay deterministic and
// testable.
var interpretations = map[interpretationKey]string{
	{effect.MagnitudeLarge, true}:       "Strong evidence this therapy is helping.",
	{effect.MagnitudeMedium, true}:      "Good evidence this therapy is making a difference.",
	{effect.MagnitudeSmall, true}:       "A small but measurable change since starting this therapy.",
	{effect.MagnitudeNegligible, true}:  "A statistically detectable but practically negligible change.",
	{effect.MagnitudeLarge, false}:      "A large apparent change, but the evidence is not yet reliable.",
	{effect.MagnitudeMedium, false}:     "A moderate apparent change, but the evidence is not yet reliable.",
	{effect.MagnitudeSmall, false}:      "No clear effect detected yet.",
	{effect.MagnitudeNegligible, false}: "No clear effect detected yet.",
}

const degenerateInterpretation = "Values are identical within a window; there is no variability to measure an effect against."

// AssembleReport packages the gate, estimator and bootstrap outputs into one
// immutable result. When the gate failed, the result short-circuits to
// Insufficient_Data carrying only the counts and the shortfall message; est
// and ci are ignored and may be nil.
//
// A computed result is significant only when the t-test p-value clears alpha
// AND the bootstrap interval excludes zero. The two lines of evidence can
// disagree for small or skewed samples, and requiring both keeps the report
// honest.
func AssembleReport(therapy series.TherapyName, metric series.Metric,
	gate effect.GateResult, nBefore, nAfter int,
	est *effect.Estimate, ci *effect.Interval, opts effect.Options) effect.Result {

	opts = opts.Normalize()

	res := effect.Result{
		Therapy: therapy,
		Metric:  metric,
		NBefore: nBefore,
		NAfter:  nAfter,
	}

	if !gate.OK {
		res.Status = effect.StatusInsufficientData
		res.Shortfall = gate.Shortfall
		return res
	}

	res.Status = effect.StatusComputed
	res.MeanBefore = &est.MeanBefore
	res.MeanAfter = &est.MeanAfter
	res.AbsoluteEffect = &est.AbsoluteEffect
	res.PercentEffect = est.PercentEffect
	res.TStatistic = est.TStatistic
	res.PValue = est.PValue
	res.CohensD = est.CohensD
	res.Magnitude = est.Magnitude
	res.DegenerateVariance = est.DegenerateVariance
	res.BootstrapCILow = &ci.Low
	res.BootstrapCIHigh = &ci.High

	if est.DegenerateVariance {
		res.Interpretation = degenerateInterpretation
		return res
	}

	res.Significant = *est.PValue < opts.SignificanceAlpha && ci.ExcludesZero()
	res.Interpretation = interpretations[interpretationKey{est.Magnitude, res.Significant}]
	return res
}
