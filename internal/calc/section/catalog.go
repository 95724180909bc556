package section

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Profile is one catalog entry. Depth in mm, I in cm^4, Z in cm^3 as stored
// in the workbook.
type Profile struct {
	Supplier   string  `json:"supplier"`
	Name       string  `json:"name"`
	Material   string  `json:"material"`
	Reinforced bool    `json:"reinforced"`
	DepthMM    float64 `json:"depth_mm"`
	ICm4       float64 `json:"i_cm4"`
	ZCm3       float64 `json:"z_cm3"`
}

// Workbook layout: one sheet per material ("aluminium" / "steel") with a
// header row SUPPLIER, NAME, MATERIAL, REINF, D, I, Z.
var requiredColumns = []string{"SUPPLIER", "NAME", "MATERIAL", "REINF", "D", "I", "Z"}

// LoadCatalog reads the profile database workbook at path for one material.
func LoadCatalog(path, mat string) ([]Profile, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open section database: %w", err)
	}
	defer f.Close()
	return readSheet(f, mat)
}

// LoadCatalogReader reads an uploaded workbook, as the API upload endpoint
// receives it.
func LoadCatalogReader(r io.Reader, mat string) ([]Profile, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open section database: %w", err)
	}
	defer f.Close()
	return readSheet(f, mat)
}

func readSheet(f *excelize.File, mat string) ([]Profile, error) {
	sheet := "steel"
	if strings.EqualFold(mat, "aluminium") {
		sheet = "aluminium"
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var profiles []Profile
	for _, row := range rows[1:] {
		p, ok := parseRow(row, cols)
		if !ok {
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %s in section database", name)
		}
	}
	return cols, nil
}

// parseRow skips rows with unparseable numerics, mirroring the permissive
// row handling of the batch importer.
func parseRow(row []string, cols map[string]int) (Profile, bool) {
	cell := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	d, err1 := strconv.ParseFloat(cell("D"), 64)
	iCm4, err2 := strconv.ParseFloat(cell("I"), 64)
	zCm3, err3 := strconv.ParseFloat(cell("Z"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Profile{}, false
	}
	if d <= 0 || iCm4 <= 0 || zCm3 <= 0 {
		return Profile{}, false
	}

	return Profile{
		Supplier:   cell("SUPPLIER"),
		Name:       cell("NAME"),
		Material:   cell("MATERIAL"),
		Reinforced: parseBool(cell("REINF")),
		DepthMM:    d,
		ICm4:       iCm4,
		ZCm3:       zCm3,
	}, true
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// Filter narrows the catalog by supplier and reinforcement. An empty
// supplier list keeps all suppliers.
func Filter(profiles []Profile, suppliers []string, includeReinforced, includeUnreinforced bool) []Profile {
	allowed := make(map[string]bool, len(suppliers))
	for _, s := range suppliers {
		allowed[s] = true
	}

	var out []Profile
	for _, p := range profiles {
		if len(suppliers) > 0 && !allowed[p.Supplier] {
			continue
		}
		if p.Reinforced && !includeReinforced {
			continue
		}
		if !p.Reinforced && !includeUnreinforced {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Suppliers lists the distinct suppliers in catalog order.
func Suppliers(profiles []Profile) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range profiles {
		if !seen[p.Supplier] {
			seen[p.Supplier] = true
			out = append(out, p.Supplier)
		}
	}
	return out
}
