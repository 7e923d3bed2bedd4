package v1handler

import (
	"net/http"

	"directorybolt/internal/auth"
	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a customer account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	user, err := h.deps.Auth.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, user)
}

// Login opens a session and returns its token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	res, err := h.deps.Auth.Login(r.Context(), req.Email, req.Password, auth.SessionMeta{
		UserAgent: r.UserAgent(),
		IP:        controller.GetClientIP(r),
	})
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, res)
}

// Logout ends the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Auth.Logout(r.Context(), getSessionToken(r.Context())); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the session user with its remaining directory budget.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	controller.WriteJSON(w, http.StatusOK, struct {
		User                 *domain.User `json:"user"`
		DirectoriesRemaining int          `json:"directoriesRemaining"`
	}{
		User:                 user,
		DirectoriesRemaining: user.DirectoriesRemaining(),
	})
}
