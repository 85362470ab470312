package health

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// Accepted ranges of the record input surface (inclusive).
const (
	MinWeight   = 30.0
	MaxWeight   = 200.0
	MinSteps    = 0
	MaxSteps    = 50000
	MinCalories = 0
	MaxCalories = 5000
	MinWater    = 0.0
	MaxWater    = 5.0
)

// HealthRecord is one submitted day's measurements. Records are values and never mutated
// once they are in a RecordStore.
type HealthRecord struct {
	Date     time.Time // calendar date, time of day is always zero (UTC)
	Weight   float64   // kilograms
	Steps    int
	Calories int
	Water    float64 // liters
}

// NewHealthRecord builds a record, truncating date to its calendar day.
func NewHealthRecord(date time.Time, weight float64, steps, calories int, water float64) HealthRecord {
	return HealthRecord{
		Date:     truncateToDay(date),
		Weight:   weight,
		Steps:    steps,
		Calories: calories,
		Water:    water,
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type recordJSON struct {
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Steps    int     `json:"steps"`
	Calories int     `json:"calories"`
	Water    float64 `json:"water"`
}

func (r HealthRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Date:     r.Date.Format(DateLayout),
		Weight:   r.Weight,
		Steps:    r.Steps,
		Calories: r.Calories,
		Water:    r.Water,
	})
}

func (r *HealthRecord) UnmarshalJSON(data []byte) error {
	var rj recordJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, rj.Date)
	if err != nil {
		return fmt.Errorf("parse record date: %w", err)
	}
	*r = NewHealthRecord(date, rj.Weight, rj.Steps, rj.Calories, rj.Water)
	return nil
}
