package health

type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Series struct {
	Name   string        `json:"name"`
	Axis   string        `json:"axis"`
	Points []SeriesPoint `json:"points"`
}

type Chart struct {
	Title  string   `json:"title"`
	Kind   string   `json:"kind"`
	Series []Series `json:"series"`
}

// Dashboard holds the data behind the three trend charts and the statistics block.
// Points follow record insertion order.
type Dashboard struct {
	Weight    Chart          `json:"weight"`
	Activity  Chart          `json:"activity"`
	Water     Chart          `json:"water"`
	Stats     Stats          `json:"stats"`
	Formatted FormattedStats `json:"formatted"`
}

func BuildDashboard(records []HealthRecord) (Dashboard, error) {
	stats, err := ComputeStatistics(records)
	if err != nil {
		return Dashboard{}, err
	}

	weight := make([]SeriesPoint, 0, len(records))
	steps := make([]SeriesPoint, 0, len(records))
	calories := make([]SeriesPoint, 0, len(records))
	water := make([]SeriesPoint, 0, len(records))
	for _, r := range records {
		date := r.Date.Format(DateLayout)
		weight = append(weight, SeriesPoint{Date: date, Value: r.Weight})
		steps = append(steps, SeriesPoint{Date: date, Value: float64(r.Steps)})
		calories = append(calories, SeriesPoint{Date: date, Value: float64(r.Calories)})
		water = append(water, SeriesPoint{Date: date, Value: r.Water})
	}

	return Dashboard{
		Weight: Chart{
			Title:  "Weight Progress",
			Kind:   "line",
			Series: []Series{{Name: "Weight", Axis: "y", Points: weight}},
		},
		Activity: Chart{
			Title: "Activity Metrics",
			Kind:  "line",
			Series: []Series{
				{Name: "Steps", Axis: "y", Points: steps},
				{Name: "Calories", Axis: "y2", Points: calories},
			},
		},
		Water: Chart{
			Title:  "Daily Water Intake",
			Kind:   "bar",
			Series: []Series{{Name: "Water", Axis: "y", Points: water}},
		},
		Stats:     stats,
		Formatted: stats.Formatted(),
	}, nil
}
