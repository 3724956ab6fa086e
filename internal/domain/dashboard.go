package domain

// Stats is the aggregate snapshot shown on the dashboard and the admin
// overview.
type Stats struct {
	TotalUsers         int `json:"total_users"`
	BlockedUsers       int `json:"blocked_users"`
	TotalPosts         int `json:"total_posts"`
	ActivePosts        int `json:"active_posts"`
	LostItems          int `json:"lost_items"`
	FoundItems         int `json:"found_items"`
	TotalMessages      int `json:"total_messages"`
	TotalMatches       int `json:"total_matches"`
	PendingMatches     int `json:"pending_matches"`
	PendingItemReports int `json:"pending_item_reports"`
	PendingUserReports int `json:"pending_user_reports"`
}
