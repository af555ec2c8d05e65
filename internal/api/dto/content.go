package dto

type EncyclopediaDTO struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required,max=50"`
	Tags     []string `json:"tags"`
	Images   []string `json:"images"`
	Status   string   `json:"status,omitempty"`
}

type TutorialDTO struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url" validate:"omitempty,max=500"`
	ThumbnailURL    string `json:"thumbnail_url" validate:"omitempty,max=500"`
	Category        string `json:"category" validate:"required,max=50"`
	Duration        int    `json:"duration" validate:"min=0"`
	DifficultyLevel int    `json:"difficulty_level" validate:"omitempty,min=1,max=5"`
	Status          string `json:"status,omitempty"`
}

type EncyclopediaRowDTO struct {
	ID        uint64   `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	ViewCount int      `json:"view_count"`
	LikeCount int      `json:"like_count"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
}

type TutorialRowDTO struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	VideoURL        string `json:"video_url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	Duration        int    `json:"duration"`
	DifficultyLevel int    `json:"difficulty_level"`
	ViewCount       int    `json:"view_count"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type ProgressDTO struct {
	ProgressPercent int `json:"progress_percent" validate:"min=0,max=100"`
	LastPosition    int `json:"last_position" validate:"min=0"`
}

type ContentOverviewDTO struct {
	Encyclopedia      []EncyclopediaRowDTO `json:"encyclopedia"`
	Tutorials         []TutorialRowDTO     `json:"tutorials"`
	EncyclopediaTotal int64                `json:"encyclopedia_total"`
	TutorialTotal     int64                `json:"tutorial_total"`
}
