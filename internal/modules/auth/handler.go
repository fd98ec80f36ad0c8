package auth

import (
	"net/http"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/georgemunganga/inventory-backend/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the login endpoint.
type Handler struct {
	service Service
	limiter *RateLimiter
}

func NewHandler(service Service, limiter *RateLimiter) *Handler {
	return &Handler{service: service, limiter: limiter}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(h.limiter.Handler).Post("/auth/login", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	fields := apperr.Fields{}
	if req.Username == "" {
		fields.Add("username", "This field is required.")
	}
	if req.Password == "" {
		fields.Add("password", "This field is required.")
	}
	if err := fields.Err(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	session, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, session)
}
