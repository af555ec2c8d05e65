package model

import (
	"time"
)

type Post struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Category     string    `gorm:"type:varchar(50);index:idx_post_category" json:"category"`
	AuthorID     uint64    `gorm:"not null;index:idx_post_author" json:"author_id"`
	Author       *User     `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	Images       []string  `gorm:"type:text;serializer:json" json:"images"`
	Tags         []string  `gorm:"type:text;serializer:json" json:"tags"`
	ViewCount    int       `gorm:"not null;default:0" json:"view_count"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	IsPinned     bool      `gorm:"not null" json:"is_pinned"`
	Status       string    `gorm:"type:varchar(20);not null;index:idx_post_status" json:"status"`
	CreatedAt    time.Time `gorm:"index:idx_post_created" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
