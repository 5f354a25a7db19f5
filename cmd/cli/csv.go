package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"painreliefmap/domain/core"
	"painreliefmap/domain/series"
)

// loadCSVSeries reads a log export into a series. The header row names the
// columns; metric cells left empty stay missing.
func loadCSVSeries(path string) (series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s has no data rows", path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}
	dateCol, ok := header["date"]
	if !ok {
		if dateCol, ok = header["log_date"]; !ok {
			return nil, fmt.Errorf("%s is missing a date column", path)
		}
	}

	out := make(series.Series, 0, len(rows)-1)
	seen := make(map[string]int, len(rows)-1)
	for n, row := range rows[1:] {
		day, err := core.ParseDay(strings.TrimSpace(row[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		if prev, dup := seen[day.String()]; dup {
			return nil, fmt.Errorf("row %d: %w: %s already appears on row %d", n+2, core.ErrDuplicateDate, day, prev)
		}
		seen[day.String()] = n + 2

		rec := series.Record{
			Date:    day,
			Metrics: make(map[series.Metric]float64),
		}

		for _, metric := range series.KnownMetrics() {
			col, ok := header[string(metric)]
			if !ok || col >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad %s value %q", n+2, metric, cell)
			}
			rec.Metrics[metric] = v
		}

		if col, ok := header["therapy_started"]; ok && col < len(row) {
			if name := strings.TrimSpace(row[col]); name != "" {
				rec.Therapies = []series.TherapyName{series.TherapyName(name)}
			}
		}
		if col, ok := header["good_day"]; ok && col < len(row) {
			rec.GoodDay, _ = strconv.ParseBool(strings.TrimSpace(row[col]))
		}

		out = append(out, rec)
	}

	return out, nil
}
