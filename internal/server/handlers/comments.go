package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/auth"
	"github.com/ryukh1003/blog/internal/server/storage"
	"github.com/ryukh1003/blog/pkg/api"
)

// CommentHandler handles the comment endpoint.
type CommentHandler struct {
	logger   *slog.Logger
	comments storage.CommentStorage
}

// NewCommentHandler creates a new handler for the comment endpoint.
func NewCommentHandler(logger *slog.Logger, comments storage.CommentStorage) *CommentHandler {
	return &CommentHandler{
		logger:   logger,
		comments: comments,
	}
}

// Comment handles POST /comment/{id}
// Requires a signed-in user; the comment is attributed to them.
func (h *CommentHandler) Comment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := auth.FromContext(ctx).User()
	if !ok {
		sendError(h.logger, w, "authentication required", http.StatusUnauthorized)
		return
	}

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req api.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode comment request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Comment == "" {
		sendError(h.logger, w, "comment is required", http.StatusBadRequest)
		return
	}

	comment := &models.Comment{
		ID:           uuid.New().String(),
		PostID:       postID,
		Comment:      req.Comment,
		CreateAtDate: time.Now(),
		UserID:       user.UserID,
		Username:     user.Username,
	}

	if err := h.comments.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create comment", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.CommentResponse{
		Success: true,
		Comment: comment,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}
