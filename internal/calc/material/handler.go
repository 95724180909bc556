package material

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type gradesResponse struct {
	Steel     []string `json:"steel"`
	Aluminium []string `json:"aluminium"`
}

// Grades serves the built-in grade libraries for client grade pickers.
func (h *Handler) Grades(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gradesResponse{
		Steel:     Grades(Steel),
		Aluminium: Grades(Aluminium),
	})
}
