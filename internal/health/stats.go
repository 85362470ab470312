package health

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats are plain aggregates over the whole record set, no windowing or weighting.
type Stats struct {
	AvgWeight  float64 `json:"avgWeight"`
	TotalSteps int64   `json:"totalSteps"`
	AvgWater   float64 `json:"avgWater"`
	Records    int     `json:"records"`
}

func ComputeStatistics(records []HealthRecord) (Stats, error) {
	if len(records) == 0 {
		return Stats{}, ErrEmptyInput
	}

	var weightSum, waterSum float64
	var stepsSum int64
	for _, r := range records {
		weightSum += r.Weight
		waterSum += r.Water
		stepsSum += int64(r.Steps)
	}

	n := float64(len(records))
	return Stats{
		AvgWeight:  weightSum / n,
		TotalSteps: stepsSum,
		AvgWater:   waterSum / n,
		Records:    len(records),
	}, nil
}

// FormattedStats is the display form of Stats: "75.0 kg", "6,000", "2.0 L".
type FormattedStats struct {
	AvgWeight  string `json:"avgWeight"`
	TotalSteps string `json:"totalSteps"`
	AvgWater   string `json:"avgWater"`
}

func (s Stats) Formatted() FormattedStats {
	return FormattedStats{
		AvgWeight:  fmt.Sprintf("%.1f kg", s.AvgWeight),
		TotalSteps: humanize.Comma(s.TotalSteps),
		AvgWater:   fmt.Sprintf("%.1f L", s.AvgWater),
	}
}
