package mullion

import (
	"math"
	"testing"

	cases "Mullion/internal/calc/cases"
	loading "Mullion/internal/calc/loading"
	material "Mullion/internal/calc/material"
)

func baseInput() Input {
	return Input{
		SpanMM:       4000,
		BayWidthMM:   3000,
		MaterialType: material.Aluminium,
		Grade:        "6063-T6",
		GammaM1:      1.1,
		Loading: loading.Inputs{
			IncludeWind:     true,
			WindPressureKPa: 1.0,
			IncludeBarrier:  true,
			BarrierLoadKNM:  0.74,
			BarrierHeightMM: 1100,
		},
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(baseInput())
	if err != nil {
		t.Fatal(err)
	}

	if res.ULS.GoverningM == nil || res.ULS.GoverningM.Case == "" {
		t.Fatal("no governing ULS case")
	}
	if res.SLS.Governing == nil || res.SLS.Governing.Case == "" {
		t.Fatal("no governing SLS case")
	}
	if res.ZReqCm3 <= 0 || res.IReqCm4 <= 0 {
		t.Errorf("required properties: Z=%g cm3, I=%g cm4", res.ZReqCm3, res.IReqCm4)
	}

	// Allowable stress from the library grade and gamma.
	if math.Abs(res.SigmaAllowPa-160e6/1.1) > 1 {
		t.Errorf("sigma_allow = %g", res.SigmaAllowPa)
	}

	// 4 m span sits in the middle deflection tier: 5 + L/300.
	want := 5 + 4000.0/300
	if math.Abs(res.DeflectionLimitMM-want) > 1e-9 {
		t.Errorf("deflection limit = %g, want %g", res.DeflectionLimitMM, want)
	}

	// Default preset is CWCT TU 14: four ULS and two SLS cases.
	if len(res.ULS.Cases) != 4 || len(res.SLS.Cases) != 2 {
		t.Errorf("got %d ULS / %d SLS cases", len(res.ULS.Cases), len(res.SLS.Cases))
	}

	// Wind uniform + barrier point, bay width taken from geometry.
	if len(res.Loads) != 2 {
		t.Fatalf("got %d loads, want 2", len(res.Loads))
	}
	if math.Abs(res.Loads[0].Magnitude-3.0) > 1e-12 {
		t.Errorf("wind load = %g N/mm, want 3", res.Loads[0].Magnitude)
	}
	if math.Abs(res.Loads[1].Magnitude-2220) > 1e-9 {
		t.Errorf("barrier load = %g N, want 2220", res.Loads[1].Magnitude)
	}
	if math.Abs(res.Loads[1].PositionM-2.0) > 1e-12 {
		t.Errorf("barrier position = %g m, want midspan", res.Loads[1].PositionM)
	}
}

func TestCalculateWindOnlyScenario(t *testing.T) {
	// Reference scenario: 4 m span, 0.05 kPa wind over a 3 m bay
	// (0.15 N/mm), unit factors, sigma_allow 145 MPa.
	in := baseInput()
	in.Loading.IncludeBarrier = false
	in.Loading.WindPressureKPa = 0.05
	in.Grade = "Custom"
	in.EPa = 70e9
	in.DensityKgM3 = 2700
	in.FyPa = 145e6
	in.GammaM1 = 1.0
	in.Standard = "Simple"

	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}

	// M_max = w L^2 / 8 = 150 * 16 / 8 = 300 Nm.
	if math.Abs(res.ULS.GoverningM.Value-300) > 1e-3 {
		t.Errorf("M_max = %g Nm, want 300", res.ULS.GoverningM.Value)
	}
	// Z_req = 300 / 145e6 ~ 2.07 cm3.
	if math.Abs(res.ZReqCm3-2.069) > 0.005 {
		t.Errorf("Z_req = %g cm3, want ~2.07", res.ZReqCm3)
	}
}

func TestCalculateCustomCases(t *testing.T) {
	in := baseInput()
	in.ULSCases = []cases.Combination{
		{Name: "only", WindFactor: 2.0, BarrierFactor: 0, CaseType: cases.ULS},
	}
	in.SLSCases = []cases.Combination{
		{Name: "sls only", WindFactor: 1.0, BarrierFactor: 0, CaseType: cases.SLS},
	}

	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.ULS.Cases) != 1 || res.ULS.Cases[0].Name != "only" {
		t.Errorf("custom ULS table ignored: %+v", res.ULS.Cases)
	}
	if res.SLS.Governing == nil || res.SLS.Governing.Case != "sls only" {
		t.Errorf("custom SLS table ignored: %+v", res.SLS.Governing)
	}
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero span", func(in *Input) { in.SpanMM = 0 }},
		{"zero bay", func(in *Input) { in.BayWidthMM = 0 }},
		{"missing grade", func(in *Input) { in.Grade = "" }},
		{"unknown grade", func(in *Input) { in.Grade = "7075-T6" }},
		{"unknown standard", func(in *Input) { in.Standard = "ASCE-7" }},
		{"bad custom material", func(in *Input) { in.Grade = "Custom"; in.FyPa = -1 }},
		{"bad custom case", func(in *Input) {
			in.ULSCases = []cases.Combination{{Name: "x", WindFactor: -1, CaseType: cases.ULS}}
		}},
	}
	for _, tt := range tests {
		in := baseInput()
		tt.mutate(&in)
		if _, err := Calculate(in); err == nil {
			t.Errorf("%s: invalid input accepted", tt.name)
		}
	}
}
