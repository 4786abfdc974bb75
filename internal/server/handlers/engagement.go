package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ryukh1003/blog/internal/server/auth"
	"github.com/ryukh1003/blog/internal/server/engagement"
	"github.com/ryukh1003/blog/internal/server/storage"
	"github.com/ryukh1003/blog/pkg/api"
)

// EngagementHandler handles the like toggle endpoint.
type EngagementHandler struct {
	logger *slog.Logger
	toggle *engagement.Service
}

// NewEngagementHandler creates a new handler for the like endpoint.
func NewEngagementHandler(logger *slog.Logger, toggle *engagement.Service) *EngagementHandler {
	return &EngagementHandler{
		logger: logger,
		toggle: toggle,
	}
}

// Like handles POST /like/{id}
// Requires a signed-in user; replies with the resulting like state.
func (h *EngagementHandler) Like(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid post id", http.StatusBadRequest)
		return
	}

	liked, likeTotal, err := h.toggle.Toggle(ctx, postID, auth.FromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthenticated):
			sendError(h.logger, w, "authentication required", http.StatusUnauthorized)
		case errors.Is(err, storage.ErrPostNotFound):
			// Posts and like records are created together; reaching
			// this for a live post means the pairing was broken.
			h.logger.ErrorContext(ctx, "like record missing",
				slog.Int64("post_id", postID), slog.Any("error", err))
			sendError(h.logger, w, "post not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrTimeout):
			h.logger.ErrorContext(ctx, "toggle timed out", slog.Any("error", err))
			sendError(h.logger, w, "store timeout", http.StatusGatewayTimeout)
		default:
			h.logger.ErrorContext(ctx, "failed to toggle like", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := api.LikeResponse{
		Liked:     liked,
		LikeTotal: likeTotal,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
