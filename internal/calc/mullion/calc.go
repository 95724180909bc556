package mullion

import (
	"fmt"

	beam "Mullion/internal/calc/beam"
	cases "Mullion/internal/calc/cases"
	geometry "Mullion/internal/calc/geometry"
	govern "Mullion/internal/calc/govern"
	loading "Mullion/internal/calc/loading"
	material "Mullion/internal/calc/material"
)

// Input is one complete mullion design request. Custom case tables take
// precedence over the named standard when supplied; material properties are
// resolved from the grade library unless the grade is "Custom".
type Input struct {
	SpanMM     float64 `json:"span_mm"`
	BayWidthMM float64 `json:"bay_width_mm"`

	MaterialType material.Type `json:"material_type"`
	Grade        string        `json:"grade"`
	EPa          float64       `json:"e_pa,omitempty"`
	DensityKgM3  float64       `json:"density_kg_m3,omitempty"`
	FyPa         float64       `json:"fy_pa,omitempty"`
	GammaM1      float64       `json:"gamma_m1"`

	Loading loading.Inputs `json:"loading"`

	Standard string              `json:"standard,omitempty"`
	ULSCases []cases.Combination `json:"uls_cases,omitempty"`
	SLSCases []cases.Combination `json:"sls_cases,omitempty"`

	DeflectionLimitMM float64 `json:"deflection_limit_mm,omitempty"`
	NPoints           int     `json:"n_points,omitempty"`
}

// Result is everything downstream consumers need: per-case diagrams for
// plotting, governing records, and the required section properties for
// catalog matching.
type Result struct {
	Geometry geometry.Geometry `json:"geometry"`
	Material material.Material `json:"material"`

	SigmaAllowPa      float64        `json:"sigma_allow_pa"`
	DeflectionLimitMM float64        `json:"deflection_limit_mm"`
	Loads             []loading.Load `json:"loads"`

	ULS govern.ULSResult `json:"uls"`
	SLS govern.SLSResult `json:"sls"`

	ZReqM3  float64 `json:"z_req_m3"`
	ZReqCm3 float64 `json:"z_req_cm3"`
	IReqM4  float64 `json:"i_req_m4"`
	IReqCm4 float64 `json:"i_req_cm4"`
}

// Calculate validates the request, factors and solves every load case and
// back-calculates the required section modulus and second moment of area.
func Calculate(in Input) (Result, error) {
	geom, err := geometry.New(in.SpanMM, in.BayWidthMM)
	if err != nil {
		return Result{}, err
	}

	mat, err := resolveMaterial(in)
	if err != nil {
		return Result{}, err
	}

	if in.GammaM1 <= 0 {
		in.GammaM1 = 1.1
	}
	sigmaAllow := mat.Fy / in.GammaM1

	set, err := resolveCases(in)
	if err != nil {
		return Result{}, err
	}

	// Bay width always comes from geometry, not from the loading block.
	in.Loading.BayWidthMM = geom.BayWidthMM
	loads, err := in.Loading.ToLoads(geom.SpanMM)
	if err != nil {
		return Result{}, err
	}

	limitMM := in.DeflectionLimitMM
	if limitMM <= 0 {
		limitMM = geometry.DeflectionLimitMM(geom.SpanMM)
	}

	nPoints := in.NPoints
	if nPoints < 2 {
		nPoints = beam.DefaultPoints
	}

	uls := govern.EvaluateULS(geom.SpanM(), loads, set.ULSCases, nPoints)
	sls := govern.EvaluateSLS(geom.SpanM(), loads, set.SLSCases, mat.E, limitMM/1000.0, nPoints)

	res := Result{
		Geometry:          geom,
		Material:          mat,
		SigmaAllowPa:      sigmaAllow,
		DeflectionLimitMM: limitMM,
		Loads:             loads,
		ULS:               uls,
		SLS:               sls,
	}

	if uls.GoverningM != nil {
		res.ZReqM3 = govern.RequiredSectionModulus(uls.GoverningM.Value, sigmaAllow)
		res.ZReqCm3 = res.ZReqM3 * 1e6
	}
	if sls.Governing != nil {
		res.IReqM4 = sls.Governing.Value
		res.IReqCm4 = res.IReqM4 * 1e8
	}

	return res, nil
}

func resolveMaterial(in Input) (material.Material, error) {
	if in.Grade == "" {
		return material.Material{}, fmt.Errorf("material grade required")
	}
	if in.Grade == "Custom" {
		return material.New(in.MaterialType, in.Grade, in.EPa, in.DensityKgM3, in.FyPa)
	}
	return material.FromLibrary(in.MaterialType, in.Grade)
}

func resolveCases(in Input) (cases.Set, error) {
	if len(in.ULSCases) > 0 || len(in.SLSCases) > 0 {
		set := cases.Set{ULSCases: in.ULSCases, SLSCases: in.SLSCases}
		if err := set.Validate(); err != nil {
			return cases.Set{}, err
		}
		return set, nil
	}
	return cases.FromPreset(in.Standard)
}
