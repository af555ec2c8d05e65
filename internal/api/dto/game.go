package dto

type ChatDTO struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type ChatReplyDTO struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

type ChallengeDTO struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	RewardPoints int    `json:"reward_points"`
}

type LeaderboardDTO struct {
	Rank     int    `json:"rank"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}

type GameProfileDTO struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
	Rank     int64  `json:"rank"`
}
