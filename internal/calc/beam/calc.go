package beam

import (
	loading "Mullion/internal/calc/loading"
)

// DefaultPoints is the default span discretization (endpoints inclusive).
const DefaultPoints = 501

// Result holds the statics of one simply-supported analysis.
// x in m, V in N, M in N*m, reactions in N.
type Result struct {
	X  []float64 `json:"x_m"`
	V  []float64 `json:"v_n"`
	M  []float64 `json:"m_nm"`
	RA float64   `json:"ra_n"`
	RB float64   `json:"rb_n"`
}

// Deflection holds the deflected shape and the integration constants from
// applying v(0)=0 and v(L)=0.
type Deflection struct {
	V  []float64 `json:"v_m"`
	C1 float64   `json:"c1"`
	C2 float64   `json:"c2"`
}

// Solve computes reactions, shear V(x) and bending moment M(x) for a simply
// supported beam of span spanM under the given loads. Uniform loads act over
// the full span; point loads act at their PositionM. A non-positive span
// yields zero reactions; callers reject bad spans before getting here.
func Solve(spanM float64, loads []loading.Load, nPoints int) Result {
	if nPoints < 2 {
		nPoints = DefaultPoints
	}

	x := make([]float64, nPoints)
	dx := spanM / float64(nPoints-1)
	for i := range x {
		x[i] = float64(i) * dx
	}
	x[nPoints-1] = spanM

	// Split into uniform (N/m) and point (N at position) contributions.
	type pointLoad struct{ p, a float64 }
	var uniform []float64
	var points []pointLoad
	for _, l := range loads {
		switch l.Distribution {
		case loading.Uniform:
			uniform = append(uniform, l.MagnitudeNPerM())
		case loading.Point:
			points = append(points, pointLoad{p: l.MagnitudeN(), a: l.PositionM})
		}
	}

	// Reactions from static equilibrium, moments taken about the left support.
	var totalLoad, totalMoment float64
	for _, w := range uniform {
		totalLoad += w * spanM
		totalMoment += w * spanM * spanM / 2.0
	}
	for _, pl := range points {
		totalLoad += pl.p
		totalMoment += pl.p * pl.a
	}

	var ra, rb float64
	if spanM > 0 {
		rb = totalMoment / spanM
		ra = totalLoad - rb
	}

	// Shear: RA minus everything to the left of x. A sample exactly at a
	// point load counts the load as passed.
	v := make([]float64, nPoints)
	for i, xi := range x {
		vi := ra
		for _, w := range uniform {
			vi -= w * xi
		}
		for _, pl := range points {
			if xi >= pl.a {
				vi -= pl.p
			}
		}
		v[i] = vi
	}

	// Moment from cumulative trapezoidal integration of V.
	m := make([]float64, nPoints)
	for i := 1; i < nPoints; i++ {
		m[i] = m[i-1] + (v[i-1]+v[i])*dx/2.0
	}

	return Result{X: x, V: v, M: m, RA: ra, RB: rb}
}

// Integrate computes the deflected shape v(x) from a moment diagram by double
// trapezoidal integration of the curvature M/(EI), then corrects with the
// simply-supported boundary conditions v(0)=0, v(L)=0.
//
// Deflection is linear in 1/I for a fixed moment diagram, so callers size a
// section by integrating once with I=1 and scaling (see govern.EvaluateSLS).
func Integrate(x, m []float64, e, i float64) Deflection {
	n := len(x)
	if n < 2 || len(m) != n {
		return Deflection{V: make([]float64, n)}
	}
	dx := x[1] - x[0]

	kappa := make([]float64, n)
	for j := range kappa {
		kappa[j] = m[j] / (e * i)
	}

	theta := make([]float64, n)
	for j := 1; j < n; j++ {
		theta[j] = theta[j-1] + (kappa[j-1]+kappa[j])*dx/2.0
	}

	raw := make([]float64, n)
	for j := 1; j < n; j++ {
		raw[j] = raw[j-1] + (theta[j-1]+theta[j])*dx/2.0
	}

	c2 := -raw[0]
	span := x[n-1] - x[0]
	c1 := 0.0
	if span > 0 {
		c1 = -(raw[n-1] + c2) / span
	}

	v := make([]float64, n)
	for j := range v {
		v[j] = raw[j] + c1*x[j] + c2
	}

	return Deflection{V: v, C1: c1, C2: c2}
}
