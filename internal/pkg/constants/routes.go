package constants

// Static route constants
const (
	PublicRoute    = "/"
	DashboardRoute = "/dashboard"
	APIRoute       = "/api"
)
