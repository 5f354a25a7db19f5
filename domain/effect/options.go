package effect

// Options is the engine's configuration surface. Every knob has a default;
// callers override individual fields and pass the struct by value, so one
// analysis can never mutate another's configuration.
type Options struct {
	// Minimum observations per window before any statistic is computed.
	// Below these floors t-tests and bootstrap resampling produce
	// confident-sounding noise, so the gate short-circuits instead.
	MinBeforeDays int `json:"min_before_days"`
	MinAfterDays  int `json:"min_after_days"`

	BootstrapIterations int     `json:"bootstrap_iterations"`
	ConfidenceLevel     float64 `json:"confidence_level"`
	SignificanceAlpha   float64 `json:"significance_alpha"`

	// |Cohen's d| cut points for Negligible/Small/Medium/Large, ascending.
	CohensDThresholds [3]float64 `json:"cohens_d_thresholds"`

	// Seed fixes the bootstrap resampling stream. Zero means seed from the
	// clock, which is the intended production behavior; tests pass a fixed
	// seed for byte-identical results.
	Seed int64 `json:"seed,omitempty"`
}

// DefaultOptions returns the standard configuration
func DefaultOptions() Options {
	return Options{
		MinBeforeDays:       3,
		MinAfterDays:        10,
		BootstrapIterations: 1000,
		ConfidenceLevel:     0.95,
		SignificanceAlpha:   0.05,
		CohensDThresholds:   [3]float64{0.2, 0.5, 0.8},
	}
}

// Normalize fills zero-valued fields with defaults so partially specified
// overrides from config or API callers stay safe.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.MinBeforeDays <= 0 {
		o.MinBeforeDays = def.MinBeforeDays
	}
	if o.MinAfterDays <= 0 {
		o.MinAfterDays = def.MinAfterDays
	}
	if o.BootstrapIterations <= 0 {
		o.BootstrapIterations = def.BootstrapIterations
	}
	if o.ConfidenceLevel <= 0 || o.ConfidenceLevel >= 1 {
		o.ConfidenceLevel = def.ConfidenceLevel
	}
	if o.SignificanceAlpha <= 0 || o.SignificanceAlpha >= 1 {
		o.SignificanceAlpha = def.SignificanceAlpha
	}
	if o.CohensDThresholds == [3]float64{} {
		o.CohensDThresholds = def.CohensDThresholds
	}
	return o
}
