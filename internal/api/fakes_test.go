package api

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/config"
)

// In-memory stores implementing the handler store contracts, so the
// handlers can be exercised over httptest without a live database.

func newTestAuth() *auth.Service {
	return auth.NewService(&config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	})
}

type fakeUserStore struct {
	nextID int64
	users  []*models.User
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

type fakeCategoryStore struct {
	nextID     int64
	categories []*models.Category
}

func (s *fakeCategoryStore) List(_ context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	category.ID = s.nextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	clone := *category
	s.categories = append(s.categories, &clone)
	return nil
}

type fakePostStore struct {
	nextID     int64
	posts      map[int64]*models.Post
	links      map[int64][]int64
	categories map[int64]string
	authors    map[int64]string
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{
		posts: make(map[int64]*models.Post),
		links: make(map[int64][]int64),
		categories: map[int64]string{
			1: "Technology",
			2: "Lifestyle",
			3: "Education",
		},
		authors: make(map[int64]string),
	}
}

func (s *fakePostStore) view(p *models.Post) *models.Post {
	clone := *p
	clone.Author = &models.User{ID: p.AuthorID, Username: s.authors[p.AuthorID]}
	clone.Categories = nil
	for _, categoryID := range s.links[p.ID] {
		clone.Categories = append(clone.Categories, models.Category{
			ID:   categoryID,
			Name: s.categories[categoryID],
		})
	}
	return &clone
}

func (s *fakePostStore) List(_ context.Context) ([]*models.Post, error) {
	out := make([]*models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		out = append(out, s.view(post))
	}
	return out, nil
}

func (s *fakePostStore) GetByID(_ context.Context, id int64) (*models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return s.view(post), nil
}

func (s *fakePostStore) CreateWithCategories(_ context.Context, post *models.Post, categoryIDs []int64) error {
	s.nextID++
	post.ID = s.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	clone := *post
	s.posts[post.ID] = &clone
	s.links[post.ID] = append([]int64(nil), categoryIDs...)
	return nil
}

func (s *fakePostStore) UpdateWithCategories(_ context.Context, post *models.Post, categoryIDs []int64) error {
	existing := s.posts[post.ID]
	existing.Title = post.Title
	existing.Content = post.Content
	existing.UpdatedAt = time.Now()
	s.links[post.ID] = append([]int64(nil), categoryIDs...)
	return nil
}

func (s *fakePostStore) Delete(_ context.Context, post *models.Post) error {
	delete(s.posts, post.ID)
	delete(s.links, post.ID)
	return nil
}

type fakeLikeStore struct {
	nextID int64
	likes  []*models.Like
}

func (s *fakeLikeStore) Create(_ context.Context, like *models.Like) error {
	s.nextID++
	like.ID = s.nextID
	like.CreatedAt = time.Now()
	clone := *like
	s.likes = append(s.likes, &clone)
	return nil
}

func (s *fakeLikeStore) DeleteByTarget(_ context.Context, userID int64, postID, commentID sql.NullInt64) (*models.Like, error) {
	var first *models.Like
	remaining := make([]*models.Like, 0, len(s.likes))
	for _, like := range s.likes {
		match := like.UserID == userID &&
			(!postID.Valid || (like.PostID.Valid && like.PostID.Int64 == postID.Int64)) &&
			(!commentID.Valid || (like.CommentID.Valid && like.CommentID.Int64 == commentID.Int64))
		if match {
			if first == nil {
				first = like
			}
			continue
		}
		remaining = append(remaining, like)
	}
	s.likes = remaining
	return first, nil
}

type fakeCommentStore struct {
	nextID   int64
	comments map[int64]*models.Comment
	authors  map[int64]string
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{
		comments: make(map[int64]*models.Comment),
		authors:  make(map[int64]string),
	}
}

func (s *fakeCommentStore) view(c *models.Comment) *models.Comment {
	clone := *c
	clone.Author = &models.User{ID: c.AuthorID, Username: s.authors[c.AuthorID]}
	return &clone
}

func (s *fakeCommentStore) ListByPost(_ context.Context, postID int64) ([]*models.Comment, error) {
	out := make([]*models.Comment, 0)
	for _, comment := range s.comments {
		if comment.PostID == postID {
			out = append(out, s.view(comment))
		}
	}
	return out, nil
}

func (s *fakeCommentStore) GetByID(_ context.Context, id int64) (*models.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	return s.view(comment), nil
}

func (s *fakeCommentStore) Create(_ context.Context, comment *models.Comment) error {
	s.nextID++
	comment.ID = s.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	clone := *comment
	s.comments[comment.ID] = &clone
	return nil
}
