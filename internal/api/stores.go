package api

import (
	"context"
	"database/sql"

	"github.com/inkwellhq/inkwell/internal/models"
)

// The store contracts the handlers depend on. The gorm repositories in
// internal/db implement them; tests substitute in-memory fakes so the
// handlers run without a live database.

// UserStore persists and looks up users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CategoryStore persists and lists categories
type CategoryStore interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

// PostStore persists posts together with their category links
type PostStore interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	CreateWithCategories(ctx context.Context, post *models.Post, categoryIDs []int64) error
	UpdateWithCategories(ctx context.Context, post *models.Post, categoryIDs []int64) error
	Delete(ctx context.Context, post *models.Post) error
}

// CommentStore persists and lists comments
type CommentStore interface {
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
}

// LikeStore persists and removes likes
type LikeStore interface {
	Create(ctx context.Context, like *models.Like) error
	DeleteByTarget(ctx context.Context, userID int64, postID, commentID sql.NullInt64) (*models.Like, error)
}
