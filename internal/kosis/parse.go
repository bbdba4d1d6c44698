package kosis

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"mulga/internal/core"
)

// row is the subset of a KOSIS record the series needs. PRD_DE is the
// 4-digit period, DT the index value as a string.
type row struct {
	Period string `json:"PRD_DE"`
	Value  string `json:"DT"`
}

// ParseSeries decodes a KOSIS payload into a Series. On success KOSIS
// returns a JSON array of records; on errors (bad key, unknown code) it
// returns an object envelope instead, which maps to an empty series.
// Records with non-numeric values are dropped; the result is sorted
// ascending by year.
func ParseSeries(data []byte) (core.Series, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return core.Series{}, nil
	}

	var rows []row
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, err
	}

	series := make(core.Series, 0, len(rows))
	for _, r := range rows {
		idx, err := strconv.ParseFloat(r.Value, 64)
		if err != nil {
			continue
		}
		series = append(series, core.IndexPoint{Year: r.Period, Index: idx})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Year < series[j].Year
	})
	return series, nil
}
