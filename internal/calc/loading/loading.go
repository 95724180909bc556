package loading

import "fmt"

type Kind string

const (
	KindWind    Kind = "wind"
	KindBarrier Kind = "barrier"
	KindDead    Kind = "dead"
)

type Distribution string

const (
	Uniform Distribution = "uniform"
	Point   Distribution = "point"
)

// Load is a single applied load on the mullion.
// Uniform magnitudes are N/mm (force per mm of mullion length), point
// magnitudes are N. PositionM locates a point load from the left support in
// metres; HeightMM is carried for barrier visualization and reports only and
// plays no part in the analysis.
type Load struct {
	Kind         Kind         `json:"kind"`
	Magnitude    float64      `json:"magnitude"`
	Distribution Distribution `json:"distribution"`
	PositionM    float64      `json:"position_m,omitempty"`
	HeightMM     float64      `json:"height_mm,omitempty"`
}

// NewUniform validates and builds a distributed load. Barrier loads modelled
// as uniform must carry a positive height.
func NewUniform(kind Kind, nPerMM float64, heightMM float64) (Load, error) {
	if nPerMM < 0 {
		return Load{}, fmt.Errorf("load magnitude must be non-negative")
	}
	if kind == KindBarrier && heightMM <= 0 {
		return Load{}, fmt.Errorf("barrier load requires positive height_mm")
	}
	return Load{Kind: kind, Magnitude: nPerMM, Distribution: Uniform, HeightMM: heightMM}, nil
}

// NewPoint validates and builds a concentrated load at positionM from the
// left support. The position is mandatory; callers wanting midspan pass
// span/2 explicitly.
func NewPoint(kind Kind, n float64, positionM float64, heightMM float64) (Load, error) {
	if n < 0 {
		return Load{}, fmt.Errorf("load magnitude must be non-negative")
	}
	if positionM <= 0 {
		return Load{}, fmt.Errorf("point load requires positive position_m")
	}
	return Load{Kind: kind, Magnitude: n, Distribution: Point, PositionM: positionM, HeightMM: heightMM}, nil
}

// MagnitudeNPerM converts a uniform magnitude to N/m. Returns 0 for point loads.
func (l Load) MagnitudeNPerM() float64 {
	if l.Distribution != Uniform {
		return 0
	}
	return l.Magnitude * 1000.0
}

// MagnitudeN returns a point magnitude in N. Returns 0 for uniform loads.
func (l Load) MagnitudeN() float64 {
	if l.Distribution != Point {
		return 0
	}
	return l.Magnitude
}

// Inputs carries the loading values as entered in the client UI.
type Inputs struct {
	IncludeWind     bool    `json:"include_wind"`
	WindPressureKPa float64 `json:"wind_pressure_kpa"`
	BayWidthMM      float64 `json:"bay_width_mm"`

	IncludeBarrier  bool    `json:"include_barrier"`
	BarrierLoadKNM  float64 `json:"barrier_load_kn_m"`
	BarrierHeightMM float64 `json:"barrier_height_mm"`
}

// WindLoadNPerMM converts wind pressure to a uniform load on the mullion:
// pressure (kPa) x bay width (mm) x 1e-3 = N/mm.
func (in Inputs) WindLoadNPerMM() float64 {
	if !in.IncludeWind {
		return 0
	}
	return in.WindPressureKPa * in.BayWidthMM * 1e-3
}

// BarrierLoadN converts the barrier line load to a single point load on the
// mullion: load (kN/m) x bay width (mm) = N.
func (in Inputs) BarrierLoadN() float64 {
	if !in.IncludeBarrier {
		return 0
	}
	return in.BarrierLoadKNM * in.BayWidthMM
}

// ToLoads converts the UI inputs to solver loads. The barrier acts as a
// point load placed at midspan, which is why the span is needed here.
func (in Inputs) ToLoads(spanMM float64) ([]Load, error) {
	var loads []Load
	if in.IncludeWind {
		wind, err := NewUniform(KindWind, in.WindLoadNPerMM(), 0)
		if err != nil {
			return nil, err
		}
		loads = append(loads, wind)
	}
	if in.IncludeBarrier {
		barrier, err := NewPoint(KindBarrier, in.BarrierLoadN(), spanMM/2.0/1000.0, in.BarrierHeightMM)
		if err != nil {
			return nil, err
		}
		loads = append(loads, barrier)
	}
	return loads, nil
}
