package dto

type UnlockRequest struct {
	AccessCode string `json:"access_code" validate:"required,numeric"`
}

type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
