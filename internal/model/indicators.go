package model

import "math"

// PivotLevels holds classical pivot-point support/resistance levels derived
// from the most recent bar.
type PivotLevels struct {
	Pivot float64
	R1    float64
	R2    float64
	S1    float64
	S2    float64
}

// IndicatorSet holds all computed technical indicator series plus descriptive
// status strings. Every series is aligned with the source bars; NaN marks a
// value that could not be computed (insufficient history or an undefined
// ratio), which keeps it distinguishable from a genuine zero.
type IndicatorSet struct {
	Series   map[string][]float64
	Scalars  map[string]float64
	Statuses map[string]string
	Pivots   PivotLevels
}

// Scalar returns the named scalar value, or NaN if absent.
func (s *IndicatorSet) Scalar(name string) float64 {
	if v, ok := s.Scalars[name]; ok {
		return v
	}
	return math.NaN()
}

// Latest returns the most recent value of the named series, or NaN if the
// series is absent or empty.
func (s *IndicatorSet) Latest(name string) float64 {
	vals, ok := s.Series[name]
	if !ok || len(vals) == 0 {
		return math.NaN()
	}
	return vals[len(vals)-1]
}

// Previous returns the second-to-last value of the named series, or NaN if
// fewer than two values exist.
func (s *IndicatorSet) Previous(name string) float64 {
	vals, ok := s.Series[name]
	if !ok || len(vals) < 2 {
		return math.NaN()
	}
	return vals[len(vals)-2]
}

// Status returns the named status string, or "N/A" if absent.
func (s *IndicatorSet) Status(name string) string {
	if v, ok := s.Statuses[name]; ok {
		return v
	}
	return "N/A"
}
