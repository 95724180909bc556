package section

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
)

const defaultCatalogPath = "data/mullion_profile_db.xlsx"

type Handler struct{}

type MatchResult struct {
	Count       int      `json:"count"`
	Suppliers   []string `json:"suppliers"`
	Checks      []Check  `json:"checks"`
	Recommended *Check   `json:"recommended"`
}

// Match evaluates the profile catalog against required section properties.
// The workbook is taken from the multipart "file" field when present,
// otherwise from the server-side database (SECTION_DB_PATH).
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	mat := r.FormValue("material")
	zReq, err := strconv.ParseFloat(r.FormValue("z_req_cm3"), 64)
	if err != nil || zReq < 0 {
		http.Error(w, "z_req_cm3 required", http.StatusBadRequest)
		return
	}
	iReq, err := strconv.ParseFloat(r.FormValue("i_req_cm4"), 64)
	if err != nil || iReq < 0 {
		http.Error(w, "i_req_cm4 required", http.StatusBadRequest)
		return
	}

	var profiles []Profile
	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		profiles, err = LoadCatalogReader(file, mat)
		if err != nil {
			http.Error(w, "Invalid section database: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		path := os.Getenv("SECTION_DB_PATH")
		if path == "" {
			path = defaultCatalogPath
		}
		profiles, err = LoadCatalog(path, mat)
		if err != nil {
			http.Error(w, "Section database unavailable", http.StatusInternalServerError)
			return
		}
	}

	var suppliers []string
	if s := r.FormValue("suppliers"); s != "" {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				suppliers = append(suppliers, name)
			}
		}
	}
	includeReinf := formBool(r.FormValue("include_reinforced"), true)
	includeUnreinf := formBool(r.FormValue("include_unreinforced"), true)

	filtered := Filter(profiles, suppliers, includeReinf, includeUnreinf)
	checks := Evaluate(filtered, zReq, iReq)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MatchResult{
		Count:       len(checks),
		Suppliers:   Suppliers(profiles),
		Checks:      checks,
		Recommended: Recommend(checks),
	})
}

func formBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}
