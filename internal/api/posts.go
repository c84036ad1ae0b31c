package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/api/objects"
	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/cache"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/logging"
	"github.com/inkwellhq/inkwell/pkg/telemetry"
)

const (
	postListCacheKey = "posts:all"
	postListCacheTTL = 30 * time.Second
)

// PostHandler handles post reads and the transactional write path
type PostHandler struct {
	posts  PostStore
	cache  *cache.Cache
	logger *zap.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(posts PostStore, redisCache *cache.Cache) *PostHandler {
	return &PostHandler{
		posts:  posts,
		cache:  redisCache,
		logger: logging.WithComponent("posts"),
	}
}

// List handles GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	if h.cache != nil {
		var cached []*objects.Post
		if err := h.cache.GetJSON(postListCacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		respondError(c, NewServerError("failed to fetch posts"), err)
		return
	}

	out := make([]*objects.Post, 0, len(posts))
	for _, post := range posts {
		out = append(out, objects.NewPost(post))
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(postListCacheKey, out, postListCacheTTL); err != nil {
			h.logger.Warn("failed to cache post list", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, NewServerError("failed to fetch post"), err)
		return
	}
	if post == nil {
		respondError(c, NewNotFoundError("post not found"), nil)
		return
	}
	c.JSON(http.StatusOK, objects.NewPostWithComments(post))
}

type postRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	CategoryIDs []int64 `json:"categoryIds"`
}

// Create handles POST /api/posts. The post row and its category links are
// written in one unit of work, then the joined projection is re-read.
func (h *PostHandler) Create(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		respondError(c, NewAuthError("authentication required"), nil)
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(c, NewValidationError("title and content are required"), nil)
		return
	}

	ctx, span := telemetry.StartSpan(c.Request.Context(), "posts.create")
	defer span.End()

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: claims.UserID,
	}
	if err := h.posts.CreateWithCategories(ctx, post, req.CategoryIDs); err != nil {
		respondError(c, FromDatabase(err, "failed to create post"), err)
		return
	}

	view, err := h.posts.GetByID(ctx, post.ID)
	if err != nil || view == nil {
		respondError(c, NewServerError("failed to fetch created post"), err)
		return
	}

	h.invalidateList()
	h.logger.Info("post created", zap.Int64("post_id", post.ID), zap.Int64("author_id", claims.UserID))
	c.JSON(http.StatusCreated, objects.NewPost(view))
}

// Update handles PUT /api/posts/:id. The ownership check runs before the
// transaction is opened; the category links are fully replaced.
func (h *PostHandler) Update(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		respondError(c, NewAuthError("authentication required"), nil)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(c, NewValidationError("title and content are required"), nil)
		return
	}

	existing, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, NewServerError("failed to fetch post"), err)
		return
	}
	if existing == nil {
		respondError(c, NewNotFoundError("post not found"), nil)
		return
	}
	if !canModify(claims, existing) {
		respondError(c, NewForbiddenError("not the author of this post"), nil)
		return
	}

	ctx, span := telemetry.StartSpan(c.Request.Context(), "posts.update")
	defer span.End()

	existing.Title = req.Title
	existing.Content = req.Content
	if err := h.posts.UpdateWithCategories(ctx, existing, req.CategoryIDs); err != nil {
		respondError(c, FromDatabase(err, "failed to update post"), err)
		return
	}

	view, err := h.posts.GetByID(ctx, id)
	if err != nil || view == nil {
		respondError(c, NewServerError("failed to fetch updated post"), err)
		return
	}

	h.invalidateList()
	c.JSON(http.StatusOK, objects.NewPost(view))
}

// Delete handles DELETE /api/posts/:id. Comments, likes and category links
// are removed by the schema's cascading foreign keys.
func (h *PostHandler) Delete(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		respondError(c, NewAuthError("authentication required"), nil)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	existing, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, NewServerError("failed to fetch post"), err)
		return
	}
	if existing == nil {
		respondError(c, NewNotFoundError("post not found"), nil)
		return
	}
	if !canModify(claims, existing) {
		respondError(c, NewForbiddenError("not the author of this post"), nil)
		return
	}

	view := objects.NewPost(existing)
	if err := h.posts.Delete(c.Request.Context(), existing); err != nil {
		respondError(c, NewServerError("failed to delete post"), err)
		return
	}

	h.invalidateList()
	h.logger.Info("post deleted", zap.Int64("post_id", id), zap.Int64("user_id", claims.UserID))
	c.JSON(http.StatusOK, gin.H{
		"message": "post deleted",
		"post":    view,
	})
}

func (h *PostHandler) invalidateList() {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(postListCacheKey); err != nil {
		h.logger.Warn("failed to invalidate post list cache", zap.Error(err))
	}
}

// canModify implements the {isAuthor, isAdmin} capability check
func canModify(claims *auth.Claims, post *models.Post) bool {
	return claims.UserID == post.AuthorID || claims.Role.IsAdmin()
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, NewValidationError("invalid id"), nil)
		return 0, false
	}
	return id, true
}
