package material

import "fmt"

type Type string

const (
	Steel     Type = "Steel"
	Aluminium Type = "Aluminium"
)

// Material properties in SI: E and fy in Pa, density in kg/m3.
type Material struct {
	Type    Type    `json:"type"`
	Grade   string  `json:"grade"`
	E       float64 `json:"e_pa"`
	Density float64 `json:"density_kg_m3"`
	Fy      float64 `json:"fy_pa"`
}

type props struct {
	e, density, fy float64
}

var library = map[Type]map[string]props{
	Steel: {
		"S235": {210e9, 7850, 235e6},
		"S275": {210e9, 7850, 275e6},
		"S355": {210e9, 7850, 355e6},
		"S420": {210e9, 7850, 420e6},
		"S460": {210e9, 7850, 460e6},
	},
	Aluminium: {
		"6063-T5":  {70e9, 2700, 130e6},
		"6063-T6":  {70e9, 2700, 160e6},
		"6061-T6":  {70e9, 2700, 140e6},
		"6005A-T6": {70e9, 2700, 225e6},
		"6082-T6":  {70e9, 2700, 250e6},
	},
}

func New(mtype Type, grade string, e, density, fy float64) (Material, error) {
	if e <= 0 {
		return Material{}, fmt.Errorf("E must be positive (Pa)")
	}
	if density <= 0 {
		return Material{}, fmt.Errorf("density must be positive (kg/m3)")
	}
	if fy <= 0 {
		return Material{}, fmt.Errorf("fy must be positive (Pa)")
	}
	return Material{Type: mtype, Grade: grade, E: e, Density: density, Fy: fy}, nil
}

// FromLibrary resolves a built-in grade, e.g. ("Aluminium", "6063-T6").
func FromLibrary(mtype Type, grade string) (Material, error) {
	p, ok := library[mtype][grade]
	if !ok {
		return Material{}, fmt.Errorf("grade %q not found for material type %s", grade, mtype)
	}
	return Material{Type: mtype, Grade: grade, E: p.e, Density: p.density, Fy: p.fy}, nil
}

// Grades lists the built-in grades for a material type.
func Grades(mtype Type) []string {
	var out []string
	for _, g := range gradeOrder[mtype] {
		out = append(out, g)
	}
	return out
}

var gradeOrder = map[Type][]string{
	Steel:     {"S235", "S275", "S355", "S420", "S460"},
	Aluminium: {"6063-T5", "6063-T6", "6061-T6", "6005A-T6", "6082-T6"},
}
