package calculator

import (
	"errors"
	"math"

	"GradeBook/internal/model"

	"github.com/shopspring/decimal"
)

// ErrEmptyCollection is returned when statistics are requested over zero grades.
var ErrEmptyCollection = errors.New("no grades to compute statistics")

// CalculateStatistics scans the grades once and returns the average, high and low.
// High and low start from the first grade. The average is rounded half-to-even
// to one decimal place.
func CalculateStatistics(grades []float64) (model.Statistics, error) {
	if len(grades) == 0 {
		return model.Statistics{}, ErrEmptyCollection
	}

	high, low := grades[0], grades[0]
	sum := 0.0
	for _, g := range grades {
		high = max(high, g)
		low = min(low, g)
		sum += g
	}

	n := float64(len(grades))
	mean := sum / n
	// Finite grades can still overflow the sum; rescale each term instead.
	if math.IsInf(mean, 0) && !math.IsInf(high, 0) && !math.IsInf(low, 0) {
		mean = 0
		for _, g := range grades {
			mean += g / n
		}
	}

	return model.Statistics{
		Average: RoundHalfEven(mean, 1),
		High:    high,
		Low:     low,
	}, nil
}

// RoundHalfEven rounds value to the given number of decimal places using banker's rounding.
// Ties are decided on the shortest decimal representation of value, so 0.25 rounds to 0.2.
// NaN and infinities are returned unchanged.
func RoundHalfEven(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	f, _ := decimal.NewFromFloat(value).RoundBank(places).Float64()
	return f
}
