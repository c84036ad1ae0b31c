package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/api/objects"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// CategoryHandler handles category listing and creation
type CategoryHandler struct {
	categories CategoryStore
	logger     *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories CategoryStore) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logging.WithComponent("categories"),
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, NewServerError("failed to fetch categories"), err)
		return
	}

	out := make([]*objects.Category, 0, len(categories))
	for _, category := range categories {
		out = append(out, objects.NewCategory(category))
	}
	c.JSON(http.StatusOK, out)
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/categories. Creation is admin-gated.
func (h *CategoryHandler) Create(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		respondError(c, NewAuthError("authentication required"), nil)
		return
	}
	if !claims.Role.IsAdmin() {
		respondError(c, NewForbiddenError("admin role required"), nil)
		return
	}

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}
	if req.Name == "" {
		respondError(c, NewValidationError("name is required"), nil)
		return
	}

	category := &models.Category{Name: req.Name}
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		respondError(c, FromDatabase(err, "failed to create category"), err)
		return
	}

	h.logger.Info("category created", zap.Int64("category_id", category.ID), zap.String("name", category.Name))
	c.JSON(http.StatusCreated, objects.NewCategory(category))
}
