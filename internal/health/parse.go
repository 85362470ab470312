package health

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// RawField is an untyped input value. In JSON it may be sent either as a string or as a bare number.
type RawField string

func (f *RawField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = RawField(s)
		return nil
	}
	*f = RawField(data)
	return nil
}

// RawRecord holds the raw, not yet coerced input of one submission.
type RawRecord struct {
	Date     RawField `json:"date"`
	Weight   RawField `json:"weight"`
	Steps    RawField `json:"steps"`
	Calories RawField `json:"calories"`
	Water    RawField `json:"water"`
}

// ParseRecord coerces raw input into a typed record and checks the accepted ranges.
// All invalid fields are reported, combined into one error; use ValidationErrors to unpack them.
func ParseRecord(raw RawRecord) (HealthRecord, error) {
	var err error

	date, dErr := parseDate("date", raw.Date)
	err = multierr.Append(err, dErr)

	weight, wErr := parseFloatInRange("weight", raw.Weight, MinWeight, MaxWeight)
	err = multierr.Append(err, wErr)

	steps, sErr := parseIntInRange("steps", raw.Steps, MinSteps, MaxSteps)
	err = multierr.Append(err, sErr)

	calories, cErr := parseIntInRange("calories", raw.Calories, MinCalories, MaxCalories)
	err = multierr.Append(err, cErr)

	water, waErr := parseFloatInRange("water", raw.Water, MinWater, MaxWater)
	err = multierr.Append(err, waErr)

	if err != nil {
		return HealthRecord{}, err
	}
	return NewHealthRecord(date, weight, steps, calories, water), nil
}

// ParseAndAppend parses raw input and appends the resulting record to store.
// Nothing is appended when any field is invalid.
func ParseAndAppend(store *RecordStore, raw RawRecord) (HealthRecord, error) {
	record, err := ParseRecord(raw)
	if err != nil {
		return HealthRecord{}, err
	}
	store.Append(record)
	return record, nil
}

func parseDate(field string, raw RawField) (time.Time, error) {
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return time.Time{}, &ValidationError{Field: field, Value: value, Reason: "missing"}
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Value: value, Reason: "expected date as YYYY-MM-DD"}
	}
	return date, nil
}

func parseFloatInRange(field string, raw RawField, lo, hi float64) (float64, error) {
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return 0, &ValidationError{Field: field, Value: value, Reason: "missing"}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValidationError{Field: field, Value: value, Reason: "not a number"}
	}
	if f < lo || f > hi {
		return 0, &ValidationError{
			Field:  field,
			Value:  value,
			Reason: fmt.Sprintf("out of range [%g, %g]", lo, hi),
		}
	}
	return f, nil
}

func parseIntInRange(field string, raw RawField, lo, hi int) (int, error) {
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return 0, &ValidationError{Field: field, Value: value, Reason: "missing"}
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: value, Reason: "not a whole number"}
	}
	if i < lo || i > hi {
		return 0, &ValidationError{
			Field:  field,
			Value:  value,
			Reason: fmt.Sprintf("out of range [%d, %d]", lo, hi),
		}
	}
	return i, nil
}
