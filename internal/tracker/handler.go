package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/ADITYA-lab-star/HuntBoard/internal/auth"
)

// Routes (all protected):
//
//	GET    /api/applications      → list the caller's applications
//	POST   /api/applications      → create one record or an ordered batch
//	PATCH  /api/applications/{id} → partial update, ownership enforced
//	DELETE /api/applications/{id} → delete, ownership enforced

// Handler exposes the application CRUD API over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the application routes on mux behind gate.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, gate *auth.Gate) {
	mux.Handle("GET /api/applications", gate.Require(h.list))
	mux.Handle("POST /api/applications", gate.Require(h.create))
	mux.Handle("PATCH /api/applications/{id}", gate.Require(h.update))
	mux.Handle("DELETE /api/applications/{id}", gate.Require(h.delete))
}

// ─── Individual handlers ──────────────────────────────────────────────────────

func (h *Handler) list(w http.ResponseWriter, r *http.Request, userID string) {
	apps, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respondErr(w, err)
		return
	}
	jsonOK(w, apps, http.StatusOK)
}

// create accepts either a single record object or an ordered array of
// records; the response mirrors the shape the caller sent.
func (h *Handler) create(w http.ResponseWriter, r *http.Request, userID string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "cannot read request body", http.StatusBadRequest)
		return
	}

	batch := false
	var payloads []Application
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		batch = true
		if err := json.Unmarshal(trimmed, &payloads); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
	} else {
		var one Application
		if err := json.Unmarshal(trimmed, &one); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		payloads = []Application{one}
	}

	created, err := h.svc.Create(r.Context(), userID, payloads)
	if err != nil {
		respondErr(w, err)
		return
	}

	if batch {
		jsonOK(w, created, http.StatusCreated)
		return
	}
	jsonOK(w, created[0], http.StatusCreated)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, userID string) {
	var p Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	app, err := h.svc.Update(r.Context(), userID, r.PathValue("id"), p)
	if err != nil {
		respondErr(w, err)
		return
	}
	jsonOK(w, app, http.StatusOK)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, userID string) {
	if err := h.svc.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		respondErr(w, err)
		return
	}
	jsonOK(w, map[string]string{"message": "Application deleted successfully"}, http.StatusOK)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// respondErr maps service errors onto the HTTP error taxonomy.
func respondErr(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		jsonError(w, verr.Msg, http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		jsonError(w, "Application not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		jsonError(w, "Not authorized for this application", http.StatusForbidden)
	default:
		log.Printf("[huntboard] store error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
	}
}

func jsonOK(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
