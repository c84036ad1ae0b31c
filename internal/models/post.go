package models

import (
	"time"
)

// Post represents a user-authored content entry
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Title     string    `gorm:"type:varchar(255);not null;column:title"`
	Content   string    `gorm:"type:text;not null;column:content"`
	AuthorID  int64     `gorm:"not null;column:author_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`

	// Relationships
	Author     *User      `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Categories []Category `gorm:"many2many:post_categories;joinForeignKey:PostID;joinReferences:CategoryID;constraint:OnDelete:CASCADE"`
	Comments   []Comment  `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PostCategory represents a post-to-category link. The pair is the whole
// identity; links are fully replaced on every post update.
type PostCategory struct {
	PostID     int64 `gorm:"primaryKey;column:post_id"`
	CategoryID int64 `gorm:"primaryKey;column:category_id"`
}

// TableName specifies the table name for PostCategory
func (PostCategory) TableName() string {
	return "post_categories"
}
