package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	auth "Mullion/internal/auth"
	repo "Mullion/internal/repo"
)

type fakeRepo struct {
	nextID   int
	names    map[int]string
	payloads map[int][]byte
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, names: map[int]string{}, payloads: map[int][]byte{}}
}

func (f *fakeRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 0, fmt.Errorf("not implemented")
}

func (f *fakeRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (f *fakeRepo) SaveDesign(ctx context.Context, userID int, name string, payload []byte) (int, error) {
	id := f.nextID
	f.nextID++
	f.names[id] = name
	f.payloads[id] = append([]byte(nil), payload...)
	return id, nil
}

func (f *fakeRepo) ListDesigns(ctx context.Context, userID int) ([]repo.DesignMeta, error) {
	var out []repo.DesignMeta
	for id, name := range f.names {
		out = append(out, repo.DesignMeta{ID: id, Name: name})
	}
	return out, nil
}

func (f *fakeRepo) GetDesign(ctx context.Context, userID, designID int) (repo.Design, error) {
	p, ok := f.payloads[designID]
	if !ok {
		return repo.Design{}, fmt.Errorf("design not found")
	}
	return repo.Design{
		DesignMeta: repo.DesignMeta{ID: designID, Name: f.names[designID]},
		Payload:    p,
	}, nil
}

func saveBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"name": "west elevation",
		"design": map[string]interface{}{
			"span_mm":       4000,
			"bay_width_mm":  3000,
			"material_type": "Aluminium",
			"grade":         "6063-T6",
			"gamma_m1":      1.1,
			"loading": map[string]interface{}{
				"include_wind":      true,
				"wind_pressure_kpa": 1.0,
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

func TestSaveRecordsLogin(t *testing.T) {
	store := newFakeRepo()
	h := &Handler{Repo: store}

	req := httptest.NewRequest(http.MethodPost, "/designs", saveBody(t))
	req = req.WithContext(auth.WithUser(req.Context(), 7, "erin"))
	rec := httptest.NewRecorder()

	h.Save(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var resp map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	id, ok := resp["id"]
	if !ok || id == 0 {
		t.Fatalf("response = %v, want an id", resp)
	}

	var snap snapshot
	if err := json.Unmarshal(store.payloads[id], &snap); err != nil {
		t.Fatal(err)
	}
	if snap.SavedBy != "erin" {
		t.Errorf("saved_by = %q, want the authenticated login", snap.SavedBy)
	}
	if snap.Result.ZReqCm3 <= 0 {
		t.Errorf("stored result not recomputed: Z_req = %g", snap.Result.ZReqCm3)
	}
	if store.names[id] != "west elevation" {
		t.Errorf("stored name = %q", store.names[id])
	}
}

func TestSaveUnauthenticated(t *testing.T) {
	h := &Handler{Repo: newFakeRepo()}

	req := httptest.NewRequest(http.MethodPost, "/designs", saveBody(t))
	rec := httptest.NewRecorder()

	h.Save(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSaveRequiresName(t *testing.T) {
	h := &Handler{Repo: newFakeRepo()}

	body := bytes.NewReader([]byte(`{"name":"  ","design":{}}`))
	req := httptest.NewRequest(http.MethodPost, "/designs", body)
	req = req.WithContext(auth.WithUser(req.Context(), 7, "erin"))
	rec := httptest.NewRecorder()

	h.Save(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestList(t *testing.T) {
	store := newFakeRepo()
	h := &Handler{Repo: store}

	req := httptest.NewRequest(http.MethodPost, "/designs", saveBody(t))
	req = req.WithContext(auth.WithUser(req.Context(), 7, "erin"))
	h.Save(httptest.NewRecorder(), req)

	listReq := httptest.NewRequest(http.MethodGet, "/designs", nil)
	listReq = listReq.WithContext(auth.WithUser(listReq.Context(), 7, "erin"))
	rec := httptest.NewRecorder()

	h.List(rec, listReq)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var metas []repo.DesignMeta
	if err := json.NewDecoder(rec.Body).Decode(&metas); err != nil {
		t.Fatal(err)
	}
	if len(metas) != 1 || metas[0].Name != "west elevation" {
		t.Errorf("list = %v", metas)
	}
}
