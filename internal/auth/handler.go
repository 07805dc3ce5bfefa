package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Routes:
//
//	POST /api/auth/register → create account, return user + token
//	POST /api/auth/login    → verify credentials, return user + token
//	GET  /api/auth/me       → return the authenticated user (protected)

const minPasswordLen = 6

// Handler holds the auth endpoints' dependencies.
type Handler struct {
	users  UserStore
	tokens *Tokens
}

// NewHandler returns a configured Handler.
func NewHandler(users UserStore, tokens *Tokens) *Handler {
	return &Handler{users: users, tokens: tokens}
}

// RegisterRoutes mounts the auth routes on mux, using gate for /me.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, gate *Gate) {
	mux.HandleFunc("POST /api/auth/register", h.register)
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.Handle("GET /api/auth/me", gate.Require(h.me))
}

// userDTO is the client-facing user shape; it never carries the hash.
type userDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Name == "" || body.Email == "" {
		jsonError(w, "name and email are required", http.StatusBadRequest)
		return
	}
	if len(body.Password) < minPasswordLen {
		jsonError(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[huntboard] bcrypt error: %v", err)
		jsonError(w, "server error", http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	u := &User{
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.users.Insert(r.Context(), u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			jsonError(w, "email already registered", http.StatusBadRequest)
			return
		}
		log.Printf("[huntboard] register insert error: %v", err)
		jsonError(w, "server error", http.StatusInternalServerError)
		return
	}

	h.respondWithToken(w, u, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	u, err := h.users.FindByEmail(r.Context(), strings.ToLower(strings.TrimSpace(body.Email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			jsonError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Printf("[huntboard] login lookup error: %v", err)
		jsonError(w, "server error", http.StatusInternalServerError)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)) != nil {
		jsonError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	h.respondWithToken(w, u, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, userID string) {
	u, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		// The token outlived the account.
		jsonError(w, "not authorized to access this route", http.StatusUnauthorized)
		return
	}

	jsonOK(w, map[string]userDTO{"user": toDTO(u)}, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, u *User, code int) {
	token, err := h.tokens.Mint(u.ID.Hex())
	if err != nil {
		log.Printf("[huntboard] token mint error: %v", err)
		jsonError(w, "server error", http.StatusInternalServerError)
		return
	}
	jsonOK(w, authResponse{User: toDTO(u), Token: token}, code)
}

func toDTO(u *User) userDTO {
	return userDTO{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

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
