package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/api/objects"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// LikeHandler handles liking and unliking posts and comments
type LikeHandler struct {
	likes  LikeStore
	logger *zap.Logger
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likes LikeStore) *LikeHandler {
	return &LikeHandler{
		likes:  likes,
		logger: logging.WithComponent("likes"),
	}
}

type likeRequest struct {
	PostID    *int64 `json:"postId"`
	CommentID *int64 `json:"commentId"`
}

func (r *likeRequest) targets() (postID, commentID sql.NullInt64) {
	if r.PostID != nil {
		postID = sql.NullInt64{Int64: *r.PostID, Valid: true}
	}
	if r.CommentID != nil {
		commentID = sql.NullInt64{Int64: *r.CommentID, Valid: true}
	}
	return postID, commentID
}

// Create handles POST /api/likes. Exactly one of postId and commentId must
// be set; the schema check constraint backs this up.
func (h *LikeHandler) Create(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		respondError(c, NewAuthError("authentication required"), nil)
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}

	postID, commentID := req.targets()
	like := &models.Like{
		UserID:    claims.UserID,
		PostID:    postID,
		CommentID: commentID,
	}
	if !like.HasTarget() {
		respondError(c, NewValidationError("exactly one of postId and commentId is required"), nil)
		return
	}

	if err := h.likes.Create(c.Request.Context(), like); err != nil {
		respondError(c, FromDatabase(err, "failed to create like"), err)
		return
	}

	h.logger.Info("like created", zap.Int64("like_id", like.ID), zap.Int64("user_id", claims.UserID))
	c.JSON(http.StatusCreated, objects.NewLike(like))
}

// Delete handles DELETE /api/likes. An absent target id means "don't filter
// on this column"; 404 when no row matched.
func (h *LikeHandler) Delete(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		respondError(c, NewAuthError("authentication required"), nil)
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}

	postID, commentID := req.targets()
	like, err := h.likes.DeleteByTarget(c.Request.Context(), claims.UserID, postID, commentID)
	if err != nil {
		respondError(c, NewServerError("failed to delete like"), err)
		return
	}
	if like == nil {
		respondError(c, NewNotFoundError("like not found"), nil)
		return
	}

	c.JSON(http.StatusOK, objects.NewLike(like))
}
