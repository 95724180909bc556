package project

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	auth "Mullion/internal/auth"
	mullion "Mullion/internal/calc/mullion"
	repo "Mullion/internal/repo"

	"github.com/gorilla/mux"
)

// Handler persists design runs for authenticated users.
type Handler struct {
	Repo repo.Repository
}

type saveRequest struct {
	Name   string        `json:"name"`
	Design mullion.Input `json:"design"`
}

type snapshot struct {
	SavedBy string         `json:"saved_by,omitempty"`
	Input   mullion.Input  `json:"input"`
	Result  mullion.Result `json:"result"`
}

// Save recomputes the design and stores the input/result snapshot under a
// user-chosen name. Recomputing keeps stored results consistent with the
// stored inputs even if the client's copy was stale.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Design name required", http.StatusBadRequest)
		return
	}

	res, err := mullion.Calculate(req.Design)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	login, _ := auth.Login(r.Context())
	payload, err := json.Marshal(snapshot{SavedBy: login, Input: req.Design, Result: res})
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	id, err := h.Repo.SaveDesign(r.Context(), userID, req.Name, payload)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

// List returns the user's saved designs, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	designs, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(designs)
}

// Get returns one saved design with its full snapshot.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid design id", http.StatusBadRequest)
		return
	}

	design, err := h.Repo.GetDesign(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(design)
}
