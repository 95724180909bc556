package beam

import (
	"math"
	"testing"

	loading "Mullion/internal/calc/loading"
)

func approx(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	tol := relTol * math.Max(math.Abs(want), 1e-12)
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (tol %g)", name, got, want, tol)
	}
}

func uniformWind(nPerMM float64) loading.Load {
	l, err := loading.NewUniform(loading.KindWind, nPerMM, 0)
	if err != nil {
		panic(err)
	}
	return l
}

func pointAt(n, posM float64) loading.Load {
	l, err := loading.NewPoint(loading.KindBarrier, n, posM, 1100)
	if err != nil {
		panic(err)
	}
	return l
}

func TestSolveUniformLoad(t *testing.T) {
	// w = 0.15 N/mm = 150 N/m over 4 m.
	res := Solve(4.0, []loading.Load{uniformWind(0.15)}, DefaultPoints)

	approx(t, "RA", res.RA, 300, 1e-9)
	approx(t, "RB", res.RB, 300, 1e-9)
	approx(t, "V[0]", res.V[0], 300, 1e-9)
	approx(t, "V[last]", res.V[len(res.V)-1], -300, 1e-9)

	// M_max = w L^2 / 8 at midspan. V is piecewise linear so the
	// trapezoidal moment is exact at the samples.
	mMax, at := 0.0, 0
	for i, m := range res.M {
		if math.Abs(m) > mMax {
			mMax, at = math.Abs(m), i
		}
	}
	approx(t, "M_max", mMax, 150*4.0*4.0/8.0, 1e-9)
	approx(t, "x(M_max)", res.X[at], 2.0, 1e-6)

	if res.M[0] != 0 {
		t.Errorf("M[0] = %g, want 0", res.M[0])
	}
	// The trapezoidal sum leaves a rounding residue at the far support, so
	// compare against zero on a scale set by M_max.
	if last := res.M[len(res.M)-1]; math.Abs(last) > 1e-9*mMax {
		t.Errorf("M[last] = %g, want 0", last)
	}
}

func TestSolveCentralPointLoad(t *testing.T) {
	res := Solve(4.0, []loading.Load{pointAt(1000, 2.0)}, DefaultPoints)

	approx(t, "RA", res.RA, 500, 1e-9)
	approx(t, "RB", res.RB, 500, 1e-9)

	// Shear steps from +P/2 to -P/2 at midspan; the sample at the load
	// position counts the load as passed.
	mid := (len(res.V) - 1) / 2
	approx(t, "V before step", res.V[mid-1], 500, 1e-9)
	approx(t, "V at step", res.V[mid], -500, 1e-9)

	mMax := 0.0
	for _, m := range res.M {
		if math.Abs(m) > mMax {
			mMax = math.Abs(m)
		}
	}
	// Trapezoidal integration across the step loses about half a sample,
	// so compare against P L / 4 with a discretization tolerance.
	approx(t, "M_max", mMax, 1000*4.0/4.0, 5e-3)
}

func TestSolveEquilibrium(t *testing.T) {
	loads := []loading.Load{
		uniformWind(0.2),
		pointAt(750, 1.0),
		pointAt(250, 3.5),
	}
	span := 5.0
	res := Solve(span, loads, 201)

	total := 0.2*1000*span + 750 + 250
	approx(t, "RA+RB", res.RA+res.RB, total, 1e-12)

	// Moment equilibrium about the left support.
	moment := 0.2 * 1000 * span * span / 2.0
	moment += 750*1.0 + 250*3.5
	approx(t, "RB*L", res.RB*span, moment, 1e-12)
}

func TestSolveZeroSpan(t *testing.T) {
	res := Solve(0, []loading.Load{uniformWind(0.1)}, 11)
	if res.RA != 0 || res.RB != 0 {
		t.Errorf("zero span reactions = %g, %g, want 0, 0", res.RA, res.RB)
	}
}

func TestIntegrateUniformLoadDeflection(t *testing.T) {
	// v_max = 5 w L^4 / (384 E I) for a uniform load.
	w, span, e, i := 150.0, 4.0, 70e9, 2e-6
	res := Solve(span, []loading.Load{uniformWind(w / 1000.0)}, DefaultPoints)
	defl := Integrate(res.X, res.M, e, i)

	vMax := 0.0
	for _, v := range defl.V {
		if math.Abs(v) > vMax {
			vMax = math.Abs(v)
		}
	}
	approx(t, "v_max", vMax, 5.0*w*math.Pow(span, 4)/(384.0*e*i), 1e-3)
}

func TestIntegrateBoundaryConditions(t *testing.T) {
	res := Solve(6.0, []loading.Load{uniformWind(0.3), pointAt(2000, 3.0)}, DefaultPoints)
	defl := Integrate(res.X, res.M, 210e9, 5e-6)

	vMax := 0.0
	for _, v := range defl.V {
		if math.Abs(v) > vMax {
			vMax = math.Abs(v)
		}
	}
	if math.Abs(defl.V[0]) > 1e-9*vMax {
		t.Errorf("v(0) = %g, want 0", defl.V[0])
	}
	if math.Abs(defl.V[len(defl.V)-1]) > 1e-9*vMax {
		t.Errorf("v(L) = %g, want 0", defl.V[len(defl.V)-1])
	}
}

func TestIntegrateLinearInInverseI(t *testing.T) {
	res := Solve(4.0, []loading.Load{uniformWind(0.15)}, DefaultPoints)

	one := Integrate(res.X, res.M, 70e9, 1.0)
	double := Integrate(res.X, res.M, 70e9, 2.0)

	for j := range one.V {
		if math.Abs(one.V[j]-2.0*double.V[j]) > 1e-15+1e-9*math.Abs(one.V[j]) {
			t.Fatalf("doubling I did not halve v at sample %d: %g vs %g", j, one.V[j], double.V[j])
		}
	}
}
