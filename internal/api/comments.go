package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/api/objects"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// CommentHandler handles comment listing and creation
type CommentHandler struct {
	comments CommentStore
	logger   *zap.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments CommentStore) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		logger:   logging.WithComponent("comments"),
	}
}

// ListByPost handles GET /api/posts/:id/comments
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, NewServerError("failed to fetch comments"), err)
		return
	}

	out := make([]*objects.Comment, 0, len(comments))
	for _, comment := range comments {
		out = append(out, objects.NewComment(comment))
	}
	c.JSON(http.StatusOK, out)
}

type createCommentRequest struct {
	Content string `json:"content"`
	PostID  int64  `json:"postId"`
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		respondError(c, NewAuthError("authentication required"), nil)
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}
	if req.Content == "" || req.PostID == 0 {
		respondError(c, NewValidationError("content and postId are required"), nil)
		return
	}

	comment := &models.Comment{
		Content:  req.Content,
		AuthorID: claims.UserID,
		PostID:   req.PostID,
	}
	if err := h.comments.Create(c.Request.Context(), comment); err != nil {
		respondError(c, FromDatabase(err, "failed to create comment"), err)
		return
	}

	// Re-read so the projection carries the author username
	created, err := h.comments.GetByID(c.Request.Context(), comment.ID)
	if err != nil || created == nil {
		respondError(c, NewServerError("failed to fetch created comment"), err)
		return
	}

	h.logger.Info("comment created", zap.Int64("comment_id", comment.ID), zap.Int64("post_id", req.PostID))
	c.JSON(http.StatusCreated, objects.NewComment(created))
}
