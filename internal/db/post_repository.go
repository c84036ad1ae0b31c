package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkwellhq/inkwell/internal/models"
)

// PostRepository provides post-related database operations. The write paths
// run as a single unit of work: gorm's Transaction guarantees commit or
// rollback on every exit path, including panics.
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// List retrieves all posts with their authors and categories
func (r *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a post with its author, categories and comments
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at")
		}).
		Preload("Comments.Author").
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// CreateWithCategories inserts the post row and its category links in one
// transaction. An empty categoryIDs list leaves the post with no links.
func (r *PostRepository) CreateWithCategories(ctx context.Context, post *models.Post, categoryIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Categories", "Comments").Create(post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		if err := linkCategories(tx, post.ID, categoryIDs); err != nil {
			return err
		}
		return nil
	})
}

// UpdateWithCategories updates title and content and fully replaces the
// post's category links in one transaction. Ownership must be checked by
// the caller before this runs.
func (r *PostRepository) UpdateWithCategories(ctx context.Context, post *models.Post, categoryIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{ID: post.ID}).
			Updates(map[string]interface{}{
				"title":   post.Title,
				"content": post.Content,
			}).Error; err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}
		if err := tx.Where("post_id = ?", post.ID).
			Delete(&models.PostCategory{}).Error; err != nil {
			return fmt.Errorf("failed to clear category links: %w", err)
		}
		if err := linkCategories(tx, post.ID, categoryIDs); err != nil {
			return err
		}
		return nil
	})
}

// Delete removes the post row. Category links, comments and likes go with
// it through the ON DELETE CASCADE foreign keys.
func (r *PostRepository) Delete(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, post.ID).Error
}

func linkCategories(tx *gorm.DB, postID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]models.PostCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		links = append(links, models.PostCategory{
			PostID:     postID,
			CategoryID: categoryID,
		})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to link categories: %w", err)
	}
	return nil
}
