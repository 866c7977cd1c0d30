package api

import (
	"net/http"

	"github.com/phrazzld/skillpilot-api/internal/api/shared"
	"github.com/phrazzld/skillpilot-api/internal/platform/logger"
	"github.com/phrazzld/skillpilot-api/internal/service"
	"github.com/phrazzld/skillpilot-api/internal/session"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	credentials service.CredentialService
	session     *session.State
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials service.CredentialService, state *session.State) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		session:     state,
	}
}

// Register handles the /api/auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	result, err := h.credentials.Register(r.Context(), req.Username, req.Password)
	switch result {
	case service.RegisterCreated:
		shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{Created: true})
	case service.RegisterAlreadyExists:
		shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
	default:
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
	}
}

// Login handles the /api/auth/login endpoint and sets the session flag on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	ok, err := h.credentials.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, GetSafeErrorMessage(err), err)
		return
	}
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	h.session.Login(req.Username)
	logger.FromContext(r.Context()).InfoContext(r.Context(), "user logged in", "username", req.Username)

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		LoggedIn: true,
		Username: req.Username,
	})
}

// Logout handles the /api/auth/logout endpoint and clears the session flag.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	w.WriteHeader(http.StatusNoContent)
}
