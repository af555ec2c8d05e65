package dto

type CreatePostDTO struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required,max=50"`
	Images   []string `json:"images"`
	Tags     []string `json:"tags"`
}

type CreateCommentDTO struct {
	Content  string  `json:"content" validate:"required,max=1000"`
	ParentID *uint64 `json:"parent_id,omitempty"`
}

type PostRowDTO struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Author       string `json:"author"`
	ViewCount    int    `json:"view_count"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	IsPinned     bool   `json:"is_pinned"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type PostDetailDTO struct {
	PostRowDTO
	Content string   `json:"content"`
	Images  []string `json:"images"`
	Tags    []string `json:"tags"`
}

// CommentNodeDTO 评论树节点，Replies 按时间正序
type CommentNodeDTO struct {
	ID        uint64            `json:"id"`
	ParentID  *uint64           `json:"parent_id"`
	Author    string            `json:"author"`
	Content   string            `json:"content"`
	LikeCount int               `json:"like_count"`
	Status    string            `json:"status"`
	CreatedAt string            `json:"created_at"`
	Replies   []*CommentNodeDTO `json:"replies"`
}

type CommunityStatsDTO struct {
	TotalPosts     int64 `json:"total_posts"`
	PublishedPosts int64 `json:"published_posts"`
	PendingPosts   int64 `json:"pending_posts"`
	HiddenPosts    int64 `json:"hidden_posts"`
	TotalComments  int64 `json:"total_comments"`
	TodayPosts     int64 `json:"today_posts"`
}
