package govern

import (
	"math"

	beam "Mullion/internal/calc/beam"
	cases "Mullion/internal/calc/cases"
	loading "Mullion/internal/calc/loading"
)

// Governing records the case producing the largest absolute value of one
// design quantity. Updates use strict >, so the first case reaching the
// extreme wins and later equal cases do not override it.
type Governing struct {
	Case  string  `json:"case"`
	Value float64 `json:"value"`
}

// value treats an absent record as the zero baseline.
func (g *Governing) value() float64 {
	if g == nil {
		return 0
	}
	return g.Value
}

// ULSCaseResult is one ULS combination's diagrams and extremes.
type ULSCaseResult struct {
	Name string `json:"name"`
	beam.Result
	MMaxNm float64 `json:"m_max_nm"`
	VMaxN  float64 `json:"v_max_n"`
	XMMaxM float64 `json:"x_m_max_m"`
	XVMaxM float64 `json:"x_v_max_m"`
}

// ULSResult aggregates all ULS combinations. Governing pointers are nil when
// the case list was empty.
type ULSResult struct {
	Cases      []ULSCaseResult `json:"cases"`
	GoverningM *Governing      `json:"governing_m"`
	GoverningV *Governing      `json:"governing_v"`
}

// SLSCaseResult is one SLS combination's stiffness requirement.
type SLSCaseResult struct {
	Name      string  `json:"name"`
	IReqM4    float64 `json:"i_req_m4"`
	VUnitMaxM float64 `json:"v_unit_max_m"`
}

// SLSResult aggregates all SLS combinations.
type SLSResult struct {
	Cases     []SLSCaseResult `json:"cases"`
	Governing *Governing      `json:"governing_i"`
	VLimitM   float64         `json:"v_limit_m"`
}

// factorLoads produces a factored copy of the base loads for one
// combination. Wind and barrier kinds pick up their factors; dead loads are
// deliberately left unfactored in every combination.
func factorLoads(base []loading.Load, windFactor, barrierFactor float64) []loading.Load {
	out := make([]loading.Load, len(base))
	for i, l := range base {
		switch l.Kind {
		case loading.KindWind:
			l.Magnitude *= windFactor
		case loading.KindBarrier:
			l.Magnitude *= barrierFactor
		case loading.KindDead:
			// unfactored
		}
		out[i] = l
	}
	return out
}

// absMax returns the largest absolute value in vals and the index of its
// first occurrence.
func absMax(vals []float64) (float64, int) {
	best, at := 0.0, 0
	for i, v := range vals {
		if a := math.Abs(v); a > best {
			best, at = a, i
		}
	}
	return best, at
}

// EvaluateULS runs every ULS combination through the beam solver and tracks
// the governing moment and shear. No deflection is computed here: ULS only
// needs M and V for strength checks.
func EvaluateULS(spanM float64, base []loading.Load, ulsCases []cases.Combination, nPoints int) ULSResult {
	res := ULSResult{}

	for _, c := range ulsCases {
		factored := factorLoads(base, c.WindFactor, c.BarrierFactor)
		analysis := beam.Solve(spanM, factored, nPoints)

		mMax, mi := absMax(analysis.M)
		vMax, vi := absMax(analysis.V)

		res.Cases = append(res.Cases, ULSCaseResult{
			Name:   c.Name,
			Result: analysis,
			MMaxNm: mMax,
			VMaxN:  vMax,
			XMMaxM: analysis.X[mi],
			XVMaxM: analysis.X[vi],
		})

		if mMax > res.GoverningM.value() {
			res.GoverningM = &Governing{Case: c.Name, Value: mMax}
		}
		if vMax > res.GoverningV.value() {
			res.GoverningV = &Governing{Case: c.Name, Value: vMax}
		}
	}

	return res
}

// EvaluateSLS determines the required second moment of area for a deflection
// limit. Each combination is solved once with I=1 m^4; since deflection
// scales with 1/I the requirement follows directly as
// I_req = v_unit_max / v_limit, with no iteration.
func EvaluateSLS(spanM float64, base []loading.Load, slsCases []cases.Combination, e, deflectionLimitM float64, nPoints int) SLSResult {
	res := SLSResult{VLimitM: deflectionLimitM}

	for _, c := range slsCases {
		factored := factorLoads(base, c.WindFactor, c.BarrierFactor)
		analysis := beam.Solve(spanM, factored, nPoints)
		defl := beam.Integrate(analysis.X, analysis.M, e, 1.0)

		vUnitMax, _ := absMax(defl.V)

		iReq := 0.0
		if deflectionLimitM > 0 && vUnitMax > 0 {
			iReq = vUnitMax / deflectionLimitM
		}

		res.Cases = append(res.Cases, SLSCaseResult{
			Name:      c.Name,
			IReqM4:    iReq,
			VUnitMaxM: vUnitMax,
		})

		if iReq > res.Governing.value() {
			res.Governing = &Governing{Case: c.Name, Value: iReq}
		}
	}

	return res
}

// RequiredSectionModulus returns M_max / sigma_allow in m^3. A non-positive
// allowable stress yields +Inf: an impossible requirement that the calling
// layer must surface as a configuration error.
func RequiredSectionModulus(mMaxNm, sigmaAllowPa float64) float64 {
	if sigmaAllowPa <= 0 {
		return math.Inf(1)
	}
	return mMaxNm / sigmaAllowPa
}
