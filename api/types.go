package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler     authHandler
	categoryHandler categoryHandler
	postHandler     postHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Detail string `json:"detail" example:"Post not found"`
}

// LoginRequest is the body accepted by POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// VerifyResponse describes the caller of an authenticated request
type VerifyResponse struct {
	Username      string `json:"username" example:"admin"`
	Authenticated bool   `json:"authenticated" example:"true"`
}

// CategoryRequest is the body accepted by POST /api/categories
type CategoryRequest struct {
	Name        string `json:"name" example:"Technológia"`
	Description string `json:"description"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Post deleted successfully"`
}

// HealthResponse reports whether the store is reachable
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
