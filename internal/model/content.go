package model

import (
	"time"
)

type EncyclopediaContent struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"type:varchar(50);not null;index:idx_ency_category" json:"category"`
	AuthorID  *uint64   `json:"author_id"`
	Images    []string  `gorm:"type:text;serializer:json" json:"images"`
	Tags      []string  `gorm:"type:text;serializer:json" json:"tags"`
	ViewCount int       `gorm:"not null;default:0" json:"view_count"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	Status    string    `gorm:"type:varchar(20);not null;index:idx_ency_status" json:"status"`
	CreatedAt time.Time `gorm:"index:idx_ency_created" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EncyclopediaContent) TableName() string {
	return "encyclopedia_contents"
}

type Tutorial struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	VideoURL        string    `gorm:"type:varchar(500)" json:"video_url"`
	ThumbnailURL    string    `gorm:"type:varchar(500)" json:"thumbnail_url"`
	Category        string    `gorm:"type:varchar(50);not null;index:idx_tutorial_category" json:"category"`
	Duration        int       `gorm:"not null;default:0" json:"duration"`
	DifficultyLevel int       `gorm:"not null;default:1" json:"difficulty_level"`
	InstructorID    *uint64   `json:"instructor_id"`
	ViewCount       int       `gorm:"not null;default:0" json:"view_count"`
	LikeCount       int       `gorm:"not null;default:0" json:"like_count"`
	Status          string    `gorm:"type:varchar(20);not null;index:idx_tutorial_status" json:"status"`
	CreatedAt       time.Time `gorm:"index:idx_tutorial_created" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Tutorial) TableName() string {
	return "tutorials"
}

type LearningProgress struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	UserID          uint64     `gorm:"not null;uniqueIndex:idx_user_tutorial" json:"user_id"`
	TutorialID      uint64     `gorm:"not null;uniqueIndex:idx_user_tutorial" json:"tutorial_id"`
	ProgressPercent int        `gorm:"not null;default:0" json:"progress_percent"`
	LastPosition    int        `gorm:"not null;default:0" json:"last_position"`
	IsCompleted     bool       `gorm:"not null" json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}
