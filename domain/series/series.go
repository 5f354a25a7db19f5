package series

import (
	"sort"

	"painreliefmap/domain/core"
)

// Record is one subject-day of logged data. Metrics is sparse: an absent key
// means the metric was not logged that day, and the engine never imputes it.
type Record struct {
	Date      core.Day           `json:"date"`
	Metrics   map[Metric]float64 `json:"metrics"`
	Therapies []TherapyName      `json:"therapy_markers,omitempty"`
	GoodDay   bool               `json:"good_day_flag"`
}

// Metric returns the logged value for m and whether it was logged at all
func (r Record) Metric(m Metric) (float64, bool) {
	v, ok := r.Metrics[m]
	return v, ok
}

// StartsTherapy reports whether this record marks t as started on this date
func (r Record) StartsTherapy(t TherapyName) bool {
	for _, name := range r.Therapies {
		if name == t {
			return true
		}
	}
	return false
}

// Series is one subject's full logged history, a sparse ordered set of daily
// records. The engine treats it as a read-only snapshot; mutation belongs to
// the storage layer.
type Series []Record

// Sorted returns a date-ascending copy of the series. The input is never
// reordered in place since callers may share the backing slice.
func (s Series) Sorted() Series {
	out := make(Series, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// InterventionDate returns the earliest date on which therapy was marked
// started. When a therapy was stopped and restarted the earliest start wins;
// the whole span from that date is treated as one continuous treatment.
func (s Series) InterventionDate(therapy TherapyName) (core.Day, error) {
	var found bool
	var earliest core.Day
	for _, r := range s {
		if !r.StartsTherapy(therapy) {
			continue
		}
		if !found || r.Date.Before(earliest) {
			earliest = r.Date
			found = true
		}
	}
	if !found {
		return core.Day{}, core.NewNoInterventionError(string(therapy))
	}
	return earliest, nil
}

// TherapiesStarted returns every therapy marked anywhere in the series, in
// order of first appearance by date.
func (s Series) TherapiesStarted() []TherapyName {
	sorted := s.Sorted()
	seen := make(map[TherapyName]bool)
	var out []TherapyName
	for _, r := range sorted {
		for _, t := range r.Therapies {
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// MetricObservations extracts the (date, value) pairs where metric was
// logged, date-ascending. Records missing the metric are excluded, not
// imputed.
func (s Series) MetricObservations(metric Metric) (dates []core.Day, values []float64) {
	for _, r := range s.Sorted() {
		if v, ok := r.Metric(metric); ok {
			dates = append(dates, r.Date)
			values = append(values, v)
		}
	}
	return dates, values
}

// PairedObservations extracts values for two metrics restricted to dates
// where both were logged (pairwise-complete-case).
func (s Series) PairedObservations(a, b Metric) (x, y []float64) {
	for _, r := range s.Sorted() {
		va, oka := r.Metric(a)
		vb, okb := r.Metric(b)
		if oka && okb {
			x = append(x, va)
			y = append(y, vb)
		}
	}
	return x, y
}

// Len returns the number of records
func (s Series) Len() int { return len(s) }
