// Command seed resets the database and loads a small fixture set:
// two users, three categories, three posts with category links, two
// comments and one like.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/db"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/config"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	authService := auth.NewService(&cfg.Auth)
	if err := seed(database, authService); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Database seeded successfully")
}

func seed(database *db.DB, authService *auth.Service) error {
	hash, err := authService.HashPassword("password")
	if err != nil {
		return err
	}

	return database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"TRUNCATE users, categories, posts, post_categories, comments, likes RESTART IDENTITY CASCADE",
		).Error; err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}

		users := []models.User{
			{Email: "test@example.com", Username: "testuser", PasswordHash: hash, Role: models.RoleUser},
			{Email: "admin@example.com", Username: "adminuser", PasswordHash: hash, Role: models.RoleAdmin},
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		author := users[0]

		categories := []models.Category{
			{Name: "Technology"},
			{Name: "Lifestyle"},
			{Name: "Education"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		posts := []models.Post{
			{Title: "Tech Trends 2025", Content: "Exploring new tech innovations.", AuthorID: author.ID},
			{Title: "Healthy Living Tips", Content: "Guide to a balanced lifestyle.", AuthorID: author.ID},
			{Title: "Learning Strategies", Content: "Effective study techniques.", AuthorID: author.ID},
		}
		if err := tx.Create(&posts).Error; err != nil {
			return fmt.Errorf("failed to seed posts: %w", err)
		}
		techPost := posts[0]

		links := []models.PostCategory{
			{PostID: techPost.ID, CategoryID: categories[0].ID},
			{PostID: techPost.ID, CategoryID: categories[1].ID},
			{PostID: posts[1].ID, CategoryID: categories[1].ID},
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to seed category links: %w", err)
		}

		comments := []models.Comment{
			{Content: "Great insights!", AuthorID: author.ID, PostID: techPost.ID},
			{Content: "Very informative.", AuthorID: author.ID, PostID: techPost.ID},
		}
		if err := tx.Create(&comments).Error; err != nil {
			return fmt.Errorf("failed to seed comments: %w", err)
		}

		like := models.Like{
			UserID: author.ID,
			PostID: sql.NullInt64{Int64: techPost.ID, Valid: true},
		}
		if err := tx.Create(&like).Error; err != nil {
			return fmt.Errorf("failed to seed likes: %w", err)
		}

		return nil
	})
}
