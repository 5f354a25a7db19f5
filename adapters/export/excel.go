// Package export writes a subject's history and analysis results to an xlsx
// workbook for sharing with a clinician.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"painreliefmap/domain/effect"
	"painreliefmap/models"
)

const (
	logsSheet    = "Logs"
	effectsSheet = "Therapy Effects"
)

var logHeaders = []string{
	"Date", "Pain", "Stress", "Anxiety", "Mood", "Sleep Hours",
	"Therapy Started", "Good Day", "Notes",
}

var effectHeaders = []string{
	"Therapy", "Metric", "Status", "Days Before", "Days After",
	"Mean Before", "Mean After", "Effect", "Effect %", "p-value",
	"Cohen's d", "Magnitude", "CI Low", "CI High", "Significant", "Interpretation",
}

// Workbook builds an xlsx file with one sheet of raw logs and one sheet of
// effect results
func Workbook(entries []models.LogEntry, results []effect.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeLogs(f, entries); err != nil {
		return nil, fmt.Errorf("failed to write logs sheet: %w", err)
	}
	if err := writeEffects(f, results); err != nil {
		return nil, fmt.Errorf("failed to write effects sheet: %w", err)
	}

	// The default "Sheet1" was renamed to Logs, so make it the active sheet
	idx, err := f.GetSheetIndex(logsSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// WriteWorkbook streams the workbook to w
func WriteWorkbook(w io.Writer, entries []models.LogEntry, results []effect.Result) error {
	f, err := Workbook(entries, results)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeLogs(f *excelize.File, entries []models.LogEntry) error {
	if err := f.SetSheetName("Sheet1", logsSheet); err != nil {
		return err
	}
	if err := setRow(f, logsSheet, 1, toCells(logHeaders)); err != nil {
		return err
	}

	for i, e := range entries {
		row := []interface{}{
			e.LogDate.Format("2006-01-02"),
			floatCell(e.PainScore),
			floatCell(e.StressScore),
			floatCell(e.AnxietyScore),
			floatCell(e.MoodScore),
			floatCell(e.SleepHours),
			e.TherapyStarted,
			e.GoodDay,
			e.Notes,
		}
		if err := setRow(f, logsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeEffects(f *excelize.File, results []effect.Result) error {
	if _, err := f.NewSheet(effectsSheet); err != nil {
		return err
	}
	if err := setRow(f, effectsSheet, 1, toCells(effectHeaders)); err != nil {
		return err
	}

	for i, r := range results {
		row := []interface{}{
			string(r.Therapy),
			string(r.Metric),
			string(r.Status),
			r.NBefore,
			r.NAfter,
			floatCell(r.MeanBefore),
			floatCell(r.MeanAfter),
			floatCell(r.AbsoluteEffect),
			floatCell(r.PercentEffect),
			floatCell(r.PValue),
			floatCell(r.CohensD),
			string(r.Magnitude),
			floatCell(r.BootstrapCILow),
			floatCell(r.BootstrapCIHigh),
			r.Significant,
			r.Interpretation,
		}
		if err := setRow(f, effectsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(headers []string) []interface{} {
	out := make([]interface{}, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}

// floatCell leaves missing values as empty cells instead of zeros
func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
