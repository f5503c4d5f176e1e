package transport

// LoginRequest is the payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the authenticated agent as returned by login and /me.
type AuthUser struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	AgentType string   `json:"agentType"`
	Roles     []string `json:"roles"`
}

// LoginResponse carries the access token and the agent it identifies.
type LoginResponse struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresAt   string   `json:"expiresAt"`
	User        AuthUser `json:"user"`
}
