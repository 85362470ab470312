package health

import (
	"fmt"
	"math"
)

type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// Lower bounds (inclusive) of the BMI categories above Underweight.
const (
	NormalBMIFrom     = 18.5
	OverweightBMIFrom = 25.0
	ObeseBMIFrom      = 30.0
)

// Bounds of the BMI calculator form. ComputeBMI itself only rejects non-positive heights.
const (
	CalculatorMinWeight = 30.0
	CalculatorMaxWeight = 200.0
	CalculatorMinHeight = 100.0
	CalculatorMaxHeight = 250.0
)

type BMIResult struct {
	Value    float64  `json:"value"`
	Category Category `json:"category"`
}

// ComputeBMI computes the body mass index from weight in kilograms and height in centimeters.
func ComputeBMI(weightKg, heightCm float64) (BMIResult, error) {
	if heightCm <= 0 || math.IsNaN(heightCm) {
		return BMIResult{}, ErrInvalidHeight
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	return BMIResult{
		Value:    bmi,
		Category: CategoryFor(bmi),
	}, nil
}

func CategoryFor(bmi float64) Category {
	switch {
	case bmi < NormalBMIFrom:
		return CategoryUnderweight
	case bmi < OverweightBMIFrom:
		return CategoryNormal
	case bmi < ObeseBMIFrom:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// Message is the calculator's result line, e.g. "Your BMI is 22.9 (Normal)".
func (r BMIResult) Message() string {
	return fmt.Sprintf("Your BMI is %.1f (%s)", r.Value, r.Category)
}

type GaugeBand struct {
	From  float64  `json:"from"`
	To    float64  `json:"to"`
	Color string   `json:"color"`
	Label Category `json:"label"`
}

// Gauge describes the BMI gauge: axis range, colored category bands and needle position.
type Gauge struct {
	AxisMin float64     `json:"axisMin"`
	AxisMax float64     `json:"axisMax"`
	Value   float64     `json:"value"`
	Needle  float64     `json:"needle"`
	Bands   []GaugeBand `json:"bands"`
}

const (
	gaugeAxisMin = 10.0
	gaugeAxisMax = 40.0
)

// GaugeFor places the result on the [10, 40] gauge; the needle is clamped to the axis,
// while Value keeps the exact BMI.
func GaugeFor(result BMIResult) Gauge {
	return Gauge{
		AxisMin: gaugeAxisMin,
		AxisMax: gaugeAxisMax,
		Value:   result.Value,
		Needle:  math.Min(math.Max(result.Value, gaugeAxisMin), gaugeAxisMax),
		Bands: []GaugeBand{
			{From: gaugeAxisMin, To: NormalBMIFrom, Color: "lightblue", Label: CategoryUnderweight},
			{From: NormalBMIFrom, To: OverweightBMIFrom, Color: "lightgreen", Label: CategoryNormal},
			{From: OverweightBMIFrom, To: ObeseBMIFrom, Color: "yellow", Label: CategoryOverweight},
			{From: ObeseBMIFrom, To: gaugeAxisMax, Color: "red", Label: CategoryObese},
		},
	}
}
