package report

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const logPrefix = "report"

var (
	ErrParseFailed           = errors.New("parse daily report fail")
	ErrOverrideTargetMissing = errors.New("override region not in report")
	ErrRegionNotFound        = errors.New("region not found")
)

// toCount converts a csv count into a number. Empty and non-numeric values
// count as zero.
func toCount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// toCoordinate converts a csv coordinate into a number, NaN when it is not
// one.
func toCoordinate(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
