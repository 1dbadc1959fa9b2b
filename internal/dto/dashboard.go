package dto

// DashboardStats holds entity counts for the admin dashboard
type DashboardStats struct {
	Users               int64 `json:"users"`
	PortfolioItems      int64 `json:"portfolio_items"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	Testimonials        int64 `json:"testimonials"`
	TeamMembers         int64 `json:"team_members"`
}

// CategoryCount is one slice of the portfolio category distribution
type CategoryCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// RecentUser is a trimmed user record for the dashboard activity feed
type RecentUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// DashboardResponse is the full dashboard payload
type DashboardResponse struct {
	Stats             DashboardStats  `json:"stats"`
	RecentUsers       []RecentUser    `json:"recent_users"`
	ProjectCategories []CategoryCount `json:"project_categories"`
}
