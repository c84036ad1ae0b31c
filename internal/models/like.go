package models

import (
	"database/sql"
	"time"
)

// Like represents a user's like on a post or a comment. Exactly one of
// PostID and CommentID is set; the table CHECK constraint is authoritative
// and the unique indexes prevent double-liking the same target.
type Like struct {
	ID        int64         `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    int64         `gorm:"not null;column:user_id;uniqueIndex:idx_likes_user_post;uniqueIndex:idx_likes_user_comment;check:likes_target_chk,(post_id IS NOT NULL AND comment_id IS NULL) OR (post_id IS NULL AND comment_id IS NOT NULL)"`
	PostID    sql.NullInt64 `gorm:"column:post_id;uniqueIndex:idx_likes_user_post"`
	CommentID sql.NullInt64 `gorm:"column:comment_id;uniqueIndex:idx_likes_user_comment"`
	CreatedAt time.Time     `gorm:"not null;column:created_at"`

	// Relationships
	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Post    *Post    `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}

// HasTarget reports whether the like targets exactly one of a post or a comment
func (l *Like) HasTarget() bool {
	return l.PostID.Valid != l.CommentID.Valid
}
