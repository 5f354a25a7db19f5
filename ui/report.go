package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
)

// handleTherapyReport renders one therapy's effect analysis as an HTML
// fragment for embedding in the dashboard.
func (s *Server) handleTherapyReport(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	metric, ok := queryMetric(c)
	if !ok {
		return
	}
	therapy := series.TherapyName(c.Param("therapy"))

	result, err := s.c.AnalysisService.AnalyzeTherapy(c.Request.Context(), uid, metric, therapy)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", renderReportHTML(result))
}

// renderReportHTML converts an effect result into an HTML fragment via its
// markdown report form.
func renderReportHTML(result effect.Result) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(reportMarkdown(result)), p, renderer)
}

// reportMarkdown writes the human-readable report for one analysis
func reportMarkdown(result effect.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Effect of %s on %s\n\n", result.Therapy, metricTitle(result.Metric))

	if !result.Computed() {
		b.WriteString("**Status:** Insufficient data\n\n")
		fmt.Fprintf(&b, "Logged days: %d before, %d after starting.\n\n", result.NBefore, result.NAfter)
		if result.Shortfall != "" {
			fmt.Fprintf(&b, "%s.\n", result.Shortfall)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n\n", result.Interpretation)

	b.WriteString("| | Before | After |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Days logged | %d | %d |\n", result.NBefore, result.NAfter)
	fmt.Fprintf(&b, "| Mean %s | %.2f | %.2f |\n\n", metricTitle(result.Metric), *result.MeanBefore, *result.MeanAfter)

	fmt.Fprintf(&b, "- Change: %+.2f", *result.AbsoluteEffect)
	if result.PercentEffect != nil {
		fmt.Fprintf(&b, " (%+.1f%%)", *result.PercentEffect)
	}
	b.WriteString("\n")

	if result.DegenerateVariance {
		b.WriteString("- Values were constant in one window, so test statistics are unavailable\n")
	} else {
		fmt.Fprintf(&b, "- Effect size: %.2f (%s)\n", *result.CohensD, result.Magnitude)
		fmt.Fprintf(&b, "- p-value: %.4f\n", *result.PValue)
	}

	if result.BootstrapCILow != nil && result.BootstrapCIHigh != nil {
		fmt.Fprintf(&b, "- 95%% CI for the mean change: [%.2f, %.2f]\n", *result.BootstrapCILow, *result.BootstrapCIHigh)
	}

	if result.Significant {
		b.WriteString("- Statistically significant at the 5% level\n")
	} else {
		b.WriteString("- Not statistically significant\n")
	}

	return b.String()
}

func metricTitle(m series.Metric) string {
	switch m {
	case series.MetricPain:
		return "pain"
	case series.MetricStress:
		return "stress"
	case series.MetricAnxiety:
		return "anxiety"
	case series.MetricMood:
		return "mood"
	case series.MetricSleepHours:
		return "sleep hours"
	}
	return string(m)
}
