package dto

type StatsDTO struct {
	Users     UserStatsDTO      `json:"users"`
	Content   ContentStatsDTO   `json:"content"`
	Community CommunityCountDTO `json:"community"`
	Shop      ShopCountDTO      `json:"shop"`
	Trends    TrendsDTO         `json:"trends"`
}

type UserStatsDTO struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
	Today  int64 `json:"today"`
}

type ContentStatsDTO struct {
	Encyclopedia int64 `json:"encyclopedia"`
	Tutorials    int64 `json:"tutorials"`
}

type CommunityCountDTO struct {
	Posts        int64 `json:"posts"`
	Comments     int64 `json:"comments"`
	PendingPosts int64 `json:"pending_posts"`
}

type ShopCountDTO struct {
	Products      int64 `json:"products"`
	Orders        int64 `json:"orders"`
	PendingOrders int64 `json:"pending_orders"`
}

// TrendsDTO WeekUsers 共 7 项，按日期由远到近
type TrendsDTO struct {
	WeekLabels []string `json:"week_labels"`
	WeekUsers  []int64  `json:"week_users"`
}

type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type DashboardDTO struct {
	Stats                StatsDTO           `json:"stats"`
	RecentUsers          []UserRowDTO       `json:"recent_users"`
	RecentPosts          []PostRowDTO       `json:"recent_posts"`
	EncyclopediaCategory []CategoryCountDTO `json:"encyclopedia_categories"`
}

type GameStatsDTO struct {
	TotalChallenges  int64            `json:"total_challenges"`
	ActiveChallenges int64            `json:"active_challenges"`
	Achievements     int64            `json:"achievements"`
	TotalPoints      int64            `json:"total_points"`
	TopPlayers       []LeaderboardDTO `json:"top_players"`
}
