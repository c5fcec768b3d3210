package auth

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SessionResponse struct {
	User        UserPublic `json:"user"`
	AccessToken string     `json:"access_token"`
}

// WebhookEvent is the identity provider's change notification.
// Supported types: user.created, user.deleted.
type WebhookEvent struct {
	Type string           `json:"type" binding:"required"`
	Data WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
