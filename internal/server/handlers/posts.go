package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ryukh1003/blog/internal/models"
	"github.com/ryukh1003/blog/internal/server/auth"
	"github.com/ryukh1003/blog/internal/server/feed"
	"github.com/ryukh1003/blog/internal/server/storage"
	"github.com/ryukh1003/blog/pkg/api"
)

// PostHandler handles the post endpoints: feed, detail, write, edit,
// delete and the per-author listing.
type PostHandler struct {
	logger     *slog.Logger
	posts      storage.PostStorage
	engagement storage.EngagementStorage
	comments   storage.CommentStorage
	feed       *feed.Service
}

// NewPostHandler creates a new handler for the post endpoints.
func NewPostHandler(
	logger *slog.Logger,
	posts storage.PostStorage,
	engagement storage.EngagementStorage,
	comments storage.CommentStorage,
	feedSvc *feed.Service,
) *PostHandler {
	return &PostHandler{
		logger:     logger,
		posts:      posts,
		engagement: engagement,
		comments:   comments,
		feed:       feedSvc,
	}
}

// Index handles GET /
// The landing view fetches its hero slice independently of the pager.
func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.feed.Hero(ctx)
	if err != nil {
		h.storeFailure(w, r, "failed to load hero feed", err)
		return
	}

	sendJSON(h.logger, w, posts, http.StatusOK)
}

// GetPosts handles GET /getPosts?page=N
// A missing or unparsable page reads as page 1; a page past the end
// returns an empty array, never an error.
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := int64(1)
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			page = parsed
		}
	}

	posts, err := h.feed.Page(ctx, page)
	if err != nil {
		h.storeFailure(w, r, "failed to load feed page", err)
		return
	}

	sendJSON(h.logger, w, posts, http.StatusOK)
}

// Write handles POST /write
// Requires a signed-in user.
func (h *PostHandler) Write(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := auth.FromContext(ctx).User()
	if !ok {
		sendError(h.logger, w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req api.WriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode write request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Content == "" {
		sendError(h.logger, w, "title and content are required", http.StatusBadRequest)
		return
	}

	post := &models.Post{
		Title:        req.Title,
		Content:      req.Content,
		CreateAtDate: time.Now(),
		UserID:       user.UserID,
		Username:     user.Username,
		PostImgPath:  req.PostImgPath,
	}

	if _, err := h.posts.CreatePost(ctx, post); err != nil {
		h.storeFailure(w, r, "failed to create post", err)
		return
	}

	h.logger.InfoContext(ctx, "post created",
		slog.Int64("post_id", post.ID),
		slog.String("userid", user.UserID))

	sendJSON(h.logger, w, api.PostResponse{Post: post}, http.StatusCreated)
}

// Detail handles GET /detail/{id}
func (h *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.posts.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.storeFailure(w, r, "failed to get post", err)
		return
	}

	like, err := h.engagement.GetEngagement(ctx, postID)
	if err != nil {
		h.storeFailure(w, r, "failed to get engagement", err)
		return
	}

	comments, err := h.comments.ListComments(ctx, postID)
	if err != nil {
		h.storeFailure(w, r, "failed to list comments", err)
		return
	}

	resp := api.DetailResponse{
		Post:     post,
		Like:     like,
		Comments: comments,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Edit handles POST /edit
// Only the author may edit their post.
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := auth.FromContext(ctx).User()
	if !ok {
		sendError(h.logger, w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req api.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode edit request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Content == "" {
		sendError(h.logger, w, "title and content are required", http.StatusBadRequest)
		return
	}

	post, err := h.posts.GetPost(ctx, req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.storeFailure(w, r, "failed to get post", err)
		return
	}

	if post.UserID != user.UserID {
		sendError(h.logger, w, "only the author can edit this post", http.StatusForbidden)
		return
	}

	post.Title = req.Title
	post.Content = req.Content
	post.PostImgPath = req.PostImgPath

	if err := h.posts.UpdatePost(ctx, post); err != nil {
		// The post can vanish between the author check and the write.
		if errors.Is(err, storage.ErrPostNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.storeFailure(w, r, "failed to update post", err)
		return
	}

	sendJSON(h.logger, w, api.PostResponse{Post: post}, http.StatusOK)
}

// Delete handles POST /delete/{id}
// Only the author may delete their post. The like record and comments
// are removed with it.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.posts.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.storeFailure(w, r, "failed to get post", err)
		return
	}

	if post.UserID != user.UserID {
		sendError(h.logger, w, "only the author can delete this post", http.StatusForbidden)
		return
	}

	if err := h.posts.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			sendError(h.logger, w, "post not found", http.StatusNotFound)
			return
		}
		h.storeFailure(w, r, "failed to delete post", err)
		return
	}

	h.logger.InfoContext(ctx, "post deleted",
		slog.Int64("post_id", postID),
		slog.String("userid", user.UserID))

	w.WriteHeader(http.StatusNoContent)
}

// Personal handles GET /personal/{userid}
func (h *PostHandler) Personal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userid")
	if userID == "" {
		sendError(h.logger, w, "userid is required", http.StatusBadRequest)
		return
	}

	posts, err := h.posts.ListPostsByUser(ctx, userID)
	if err != nil {
		h.storeFailure(w, r, "failed to list posts by user", err)
		return
	}

	sendJSON(h.logger, w, posts, http.StatusOK)
}

// storeFailure logs a storage error and maps it to 504 for an
// exceeded deadline, 500 otherwise.
func (h *PostHandler) storeFailure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	if errors.Is(err, storage.ErrTimeout) {
		sendError(h.logger, w, "store timeout", http.StatusGatewayTimeout)
		return
	}
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}
