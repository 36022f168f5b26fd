package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"GradeBook/internal/model"

	"github.com/shopspring/decimal"
)

// FormatStatistics renders the three-line grade report.
// High and low use their shortest form; the average shows one decimal place.
// Magnitudes from 1e21 up are printed in exponent form.
func FormatStatistics(stats model.Statistics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Highest Grade: %s\n", formatGrade(stats.High)))
	b.WriteString(fmt.Sprintf("Lowest Grade: %s\n", formatGrade(stats.Low)))
	b.WriteString(fmt.Sprintf("Average: %s\n", formatAverage(stats.Average)))
	return b.String()
}

// expThreshold is the magnitude from which grades are printed in exponent form.
const expThreshold = 1e21

func formatGrade(v float64) string {
	if math.Abs(v) >= expThreshold {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAverage(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= expThreshold {
		return formatGrade(v)
	}
	return decimal.NewFromFloat(v).StringFixedBank(1)
}
