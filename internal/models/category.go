package models

import (
	"time"
)

// Category represents a content category. Names are unique.
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex;column:name"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
