package models

// AuthResponse is returned by successful register and login calls.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// MessageResponse is the body of every error response and of delete
// confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}
