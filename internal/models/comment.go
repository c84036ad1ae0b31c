package models

import (
	"time"
)

// Comment represents a user's comment on a post
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Content   string    `gorm:"type:text;not null;column:content"`
	AuthorID  int64     `gorm:"not null;column:author_id"`
	PostID    int64     `gorm:"not null;column:post_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`

	// Relationships
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
