package model

import (
	"time"
)

// Comment ParentID 为空表示直接评论帖子，否则指向同一帖子下的另一条评论
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_comment_post" json:"post_id"`
	AuthorID  uint64    `gorm:"not null;index:idx_comment_author" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	ParentID  *uint64   `gorm:"index:idx_comment_parent" json:"parent_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
