package cases

import "fmt"

type CaseType string

const (
	ULS CaseType = "ULS"
	SLS CaseType = "SLS"
)

// Combination is one partial-factor load combination. The wind factor
// multiplies wind-kind loads, the barrier factor barrier-kind loads; dead
// loads pass through every combination unfactored.
type Combination struct {
	Name          string   `json:"name"`
	WindFactor    float64  `json:"wind_factor"`
	BarrierFactor float64  `json:"barrier_factor"`
	CaseType      CaseType `json:"case_type"`
}

func (c Combination) Validate() error {
	if c.WindFactor < 0 {
		return fmt.Errorf("wind_factor must be non-negative")
	}
	if c.BarrierFactor < 0 {
		return fmt.Errorf("barrier_factor must be non-negative")
	}
	if c.CaseType != ULS && c.CaseType != SLS {
		return fmt.Errorf("case_type must be ULS or SLS")
	}
	return nil
}

// Set partitions combinations into the ULS and SLS lists. Order is
// significant: the governor evaluates in table order and first-encountered
// wins governing ties.
type Set struct {
	ULSCases []Combination `json:"uls_cases"`
	SLSCases []Combination `json:"sls_cases"`
}

func (s Set) Validate() error {
	for _, c := range s.ULSCases {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("ULS case %q: %w", c.Name, err)
		}
	}
	for _, c := range s.SLSCases {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("SLS case %q: %w", c.Name, err)
		}
	}
	return nil
}

// CWCTTU14 returns the CWCT TU 14 default factor tables.
func CWCTTU14() Set {
	return Set{
		ULSCases: []Combination{
			{"ULS 1: 1.5W + 0.75L", 1.5, 0.75, ULS},
			{"ULS 2: 0.75W + 1.5L", 0.75, 1.5, ULS},
			{"ULS 3: 1.5W", 1.5, 0.0, ULS},
			{"ULS 4: 1.5L", 0.0, 1.5, ULS},
		},
		SLSCases: []Combination{
			{"SLS 1: W", 1.0, 0.0, SLS},
			{"SLS 2: L", 0.0, 1.0, SLS},
		},
	}
}

// EN1990 returns the BS EN 1990 default factor tables.
func EN1990() Set {
	return Set{
		ULSCases: []Combination{
			{"ULS 1: 1.5W + 0.9L", 1.5, 0.9, ULS},
			{"ULS 2: 0.9W + 1.5L", 0.9, 1.5, ULS},
			{"ULS 3: 1.5W", 1.5, 0.0, ULS},
			{"ULS 4: 1.5L", 0.0, 1.5, ULS},
		},
		SLSCases: []Combination{
			{"SLS 1: W + 0.5L", 1.0, 0.5, SLS},
			{"SLS 2: 0.5W + L", 0.5, 1.0, SLS},
		},
	}
}

// SBC301 returns the SBC-301 default factor tables.
func SBC301() Set {
	return Set{
		ULSCases: []Combination{
			{"ULS 1: 0.5W + 1.6L", 0.5, 1.6, ULS},
			{"ULS 2: W + 0.5L", 1.0, 0.5, ULS},
			{"ULS 3: W", 1.0, 0.0, ULS},
		},
		SLSCases: []Combination{
			{"SLS 1: L", 0.0, 1.0, SLS},
			{"SLS 2: 0.75L", 0.0, 0.75, SLS},
			{"SLS 3: 0.6W", 0.6, 0.0, SLS},
			{"SLS 4: 0.45W + 0.75L", 0.45, 0.75, SLS},
			{"SLS 5: 0.6W", 0.6, 0.0, SLS},
		},
	}
}

// Simple returns a single unfactored pair for quick checks.
func Simple() Set {
	return Set{
		ULSCases: []Combination{{"ULS 1: Custom", 1.0, 1.0, ULS}},
		SLSCases: []Combination{{"SLS 1: Custom", 1.0, 1.0, SLS}},
	}
}

// Blank returns zero-factor placeholders for custom entry.
func Blank() Set {
	return Set{
		ULSCases: []Combination{{"ULS 1: Custom", 0.0, 0.0, ULS}},
		SLSCases: []Combination{{"SLS 1: Custom", 0.0, 0.0, SLS}},
	}
}

// FromPreset resolves a named standard to its default Set.
func FromPreset(name string) (Set, error) {
	switch name {
	case "CWCT TU 14", "":
		return CWCTTU14(), nil
	case "BS EN 1990":
		return EN1990(), nil
	case "SBC-301":
		return SBC301(), nil
	case "Simple":
		return Simple(), nil
	case "Custom":
		return Blank(), nil
	}
	return Set{}, fmt.Errorf("unknown load case standard %q", name)
}
