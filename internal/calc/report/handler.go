package report

import (
	"encoding/json"
	"net/http"
	"time"

	mullion "Mullion/internal/calc/mullion"
)

// Input wraps a design request with the report front matter.
type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Design  mullion.Input `json:"design"`
}

type Handler struct{}

// Generate recomputes the design and streams a PDF report.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := mullion.Calculate(input.Design)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"mullion_report.pdf\"")
	if err := WritePDF(w, input, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

type jsonExport struct {
	GeneratedAt string         `json:"generated_at"`
	Project     string         `json:"project"`
	Author      string         `json:"author"`
	Input       mullion.Input  `json:"input"`
	Result      mullion.Result `json:"result"`
}

// Export recomputes the design and returns the full run as JSON for
// archiving or downstream tooling.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := mullion.Calculate(input.Design)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=\"mullion_design.json\"")
	json.NewEncoder(w).Encode(jsonExport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Project:     input.Project,
		Author:      input.Author,
		Input:       input.Design,
		Result:      res,
	})
}
