// Package objects holds the JSON projections returned by the REST API.
package objects

import (
	"time"

	"github.com/inkwellhq/inkwell/internal/models"
)

// User is the public projection of a user, without the password hash
type User struct {
	ID        int64       `json:"id"`
	Email     string      `json:"email"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewUser builds a user projection
func NewUser(u *models.User) *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Category is the public projection of a category
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory builds a category projection
func NewCategory(c *models.Category) *Category {
	return &Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Comment is the public projection of a comment, joined with its author
type Comment struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	AuthorID       int64     `json:"author_id"`
	PostID         int64     `json:"post_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	AuthorUsername string    `json:"author_username"`
}

// NewComment builds a comment projection
func NewComment(c *models.Comment) *Comment {
	out := &Comment{
		ID:        c.ID,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author != nil {
		out.AuthorUsername = c.Author.Username
	}
	return out
}

// Post is the denormalized projection of a post: the row joined with the
// author's username and the aggregated category names. Comments are only
// populated on single-post fetches.
type Post struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	AuthorID       int64      `json:"author_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	AuthorUsername string     `json:"author_username"`
	CategoryNames  []string   `json:"category_names"`
	Comments       []*Comment `json:"comments,omitempty"`
}

// NewPost builds a post projection without comments
func NewPost(p *models.Post) *Post {
	out := &Post{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		AuthorID:      p.AuthorID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		CategoryNames: make([]string, 0, len(p.Categories)),
	}
	if p.Author != nil {
		out.AuthorUsername = p.Author.Username
	}
	for _, category := range p.Categories {
		out.CategoryNames = append(out.CategoryNames, category.Name)
	}
	return out
}

// NewPostWithComments builds a post projection including its comments
func NewPostWithComments(p *models.Post) *Post {
	out := NewPost(p)
	out.Comments = make([]*Comment, 0, len(p.Comments))
	for i := range p.Comments {
		out.Comments = append(out.Comments, NewComment(&p.Comments[i]))
	}
	return out
}

// Like is the public projection of a like
type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    *int64    `json:"post_id"`
	CommentID *int64    `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLike builds a like projection
func NewLike(l *models.Like) *Like {
	out := &Like{
		ID:        l.ID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
	if l.PostID.Valid {
		id := l.PostID.Int64
		out.PostID = &id
	}
	if l.CommentID.Valid {
		id := l.CommentID.Int64
		out.CommentID = &id
	}
	return out
}
