package api

import (
	"encoding/json"
	"net/http"

	"painreliefmap/domain/core"
	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
	"painreliefmap/internal/analysis"
)

// EffectRequest is the payload for POST /v1/effect. Options may be partial;
// unset fields fall back to the server's configuration.
type EffectRequest struct {
	Records []series.Record    `json:"records"`
	Therapy series.TherapyName `json:"therapy_name"`
	Metric  series.Metric      `json:"metric_name"`
	Options *effect.Options    `json:"options,omitempty"`
}

// CorrelationsRequest is the payload for POST /v1/correlations
type CorrelationsRequest struct {
	Records []series.Record `json:"records"`
	Metrics []series.Metric `json:"metrics,omitempty"`
}

// CorrelationsResponse wraps the pairwise correlation list
type CorrelationsResponse struct {
	Correlations []analysis.MetricCorrelation `json:"correlations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics lists the metric names the engine accepts
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]series.Metric{"metrics": series.KnownMetrics()})
}

func (s *Server) handleEffect(w http.ResponseWriter, r *http.Request) {
	var req EffectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Records) == 0 {
		writeError(w, http.StatusBadRequest, "records are required")
		return
	}
	if req.Therapy == "" {
		writeError(w, http.StatusBadRequest, "therapy_name is required")
		return
	}
	if req.Metric == "" {
		req.Metric = series.MetricPain
	}

	analyzer := s.analyzer
	if req.Options != nil {
		analyzer = analysis.NewAnalyzer(mergeOptions(s.analyzer.Options(), *req.Options))
	}

	result, err := analyzer.AnalyzeTherapy(series.Series(req.Records), req.Metric, req.Therapy)
	if err != nil {
		if core.IsUsageError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("Effect analysis failed: %v", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCorrelations(w http.ResponseWriter, r *http.Request) {
	var req CorrelationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Records) == 0 {
		writeError(w, http.StatusBadRequest, "records are required")
		return
	}
	for _, m := range req.Metrics {
		if !m.IsKnown() {
			writeError(w, http.StatusBadRequest, "unknown metric: "+string(m))
			return
		}
	}

	corrs := s.analyzer.Correlations(series.Series(req.Records), req.Metrics)
	writeJSON(w, http.StatusOK, CorrelationsResponse{Correlations: corrs})
}

// mergeOptions lays request overrides over the server's configured options.
// Unset request fields keep the server value, not the package default.
func mergeOptions(base, override effect.Options) effect.Options {
	if override.MinBeforeDays > 0 {
		base.MinBeforeDays = override.MinBeforeDays
	}
	if override.MinAfterDays > 0 {
		base.MinAfterDays = override.MinAfterDays
	}
	if override.BootstrapIterations > 0 {
		base.BootstrapIterations = override.BootstrapIterations
	}
	if override.ConfidenceLevel > 0 {
		base.ConfidenceLevel = override.ConfidenceLevel
	}
	if override.SignificanceAlpha > 0 {
		base.SignificanceAlpha = override.SignificanceAlpha
	}
	if override.CohensDThresholds != ([3]float64{}) {
		base.CohensDThresholds = override.CohensDThresholds
	}
	if override.Seed != 0 {
		base.Seed = override.Seed
	}
	return base
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
