package material

import "testing"

func TestFromLibrary(t *testing.T) {
	m, err := FromLibrary(Aluminium, "6063-T6")
	if err != nil {
		t.Fatal(err)
	}
	if m.E != 70e9 || m.Fy != 160e6 || m.Density != 2700 {
		t.Errorf("6063-T6 = %+v", m)
	}

	s, err := FromLibrary(Steel, "S355")
	if err != nil {
		t.Fatal(err)
	}
	if s.E != 210e9 || s.Fy != 355e6 {
		t.Errorf("S355 = %+v", s)
	}

	if _, err := FromLibrary(Steel, "6063-T6"); err == nil {
		t.Error("aluminium grade resolved as steel")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Steel, "Custom", 0, 7850, 275e6); err == nil {
		t.Error("zero E accepted")
	}
	if _, err := New(Steel, "Custom", 210e9, 0, 275e6); err == nil {
		t.Error("zero density accepted")
	}
	if _, err := New(Steel, "Custom", 210e9, 7850, 0); err == nil {
		t.Error("zero fy accepted")
	}
	if _, err := New(Steel, "Custom", 210e9, 7850, 275e6); err != nil {
		t.Errorf("valid custom material rejected: %v", err)
	}
}

func TestGrades(t *testing.T) {
	al := Grades(Aluminium)
	if len(al) != 5 || al[0] != "6063-T5" {
		t.Errorf("aluminium grades = %v", al)
	}
	st := Grades(Steel)
	if len(st) != 5 || st[len(st)-1] != "S460" {
		t.Errorf("steel grades = %v", st)
	}
}
