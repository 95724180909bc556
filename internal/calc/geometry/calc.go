package geometry

import "fmt"

// Geometry describes one mullion bay. Span is the length between supports
// along the mullion, bay width is the tributary glazing width. Both in mm.
type Geometry struct {
	SpanMM     float64 `json:"span_mm"`
	BayWidthMM float64 `json:"bay_width_mm"`
}

func New(spanMM, bayWidthMM float64) (Geometry, error) {
	if spanMM <= 0 {
		return Geometry{}, fmt.Errorf("span_mm must be > 0")
	}
	if bayWidthMM <= 0 {
		return Geometry{}, fmt.Errorf("bay_width_mm must be > 0")
	}
	return Geometry{SpanMM: spanMM, BayWidthMM: bayWidthMM}, nil
}

func (g Geometry) SpanM() float64 {
	return g.SpanMM / 1000.0
}

func (g Geometry) BayWidthM() float64 {
	return g.BayWidthMM / 1000.0
}

// TributaryAreaM2 is the simple span x bay width area in m^2.
func (g Geometry) TributaryAreaM2() float64 {
	return g.SpanM() * g.BayWidthM()
}

// DeflectionLimitMM returns the tiered span-dependent deflection limit:
// L/200 up to 3 m, 5mm + L/300 below 7.5 m, L/250 beyond.
func DeflectionLimitMM(spanMM float64) float64 {
	switch {
	case spanMM <= 3000:
		return spanMM / 200.0
	case spanMM < 7500:
		return 5.0 + spanMM/300.0
	default:
		return spanMM / 250.0
	}
}
