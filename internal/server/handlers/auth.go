package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ryukh1003/blog/internal/server/auth"
	"github.com/ryukh1003/blog/internal/server/middleware"
	"github.com/ryukh1003/blog/internal/server/token"
	"github.com/ryukh1003/blog/internal/validation"
	"github.com/ryukh1003/blog/pkg/api"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	logger *slog.Logger
	creds  *auth.Service
	codec  *token.Codec
}

// NewAuthHandler creates a new handler for the auth endpoints.
func NewAuthHandler(logger *slog.Logger, creds *auth.Service, codec *token.Codec) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		creds:  creds,
		codec:  codec,
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode signup request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUserID(req.UserID); err != nil {
		h.logger.WarnContext(ctx, "invalid userid", slog.String("userid", req.UserID), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		sendError(h.logger, w, "username is required", http.StatusBadRequest)
		return
	}

	user, err := h.creds.Register(ctx, req.UserID, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUser) {
			h.logger.WarnContext(ctx, "userid already taken", slog.String("userid", req.UserID))
			sendError(h.logger, w, "userid already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.SignupResponse{
		UserID:  user.UserID,
		Message: "User registered successfully",
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login handles POST /login
//
// An unknown userid answers 404 and a wrong password 401. Existing
// clients depend on telling the two apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.creds.Authenticate(ctx, req.UserID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("userid", req.UserID))
			sendError(h.logger, w, "user not found", http.StatusNotFound)
		case errors.Is(err, auth.ErrBadPassword):
			h.logger.WarnContext(ctx, "login failed: wrong password", slog.String("userid", req.UserID))
			sendError(h.logger, w, "wrong password", http.StatusUnauthorized)
		default:
			h.logger.ErrorContext(ctx, "failed to authenticate user", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	signed, err := h.codec.Sign(user.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sign session token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.InfoContext(ctx, "user logged in", slog.String("userid", user.UserID))

	resp := api.LoginResponse{
		UserID:   user.UserID,
		Username: user.Username,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Logout handles GET /logout
// Invalidation is client-side only: the token is stateless, so
// clearing the cookie is all there is to do.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}
