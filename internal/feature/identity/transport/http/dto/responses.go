package dto

// MessageResponse is the generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserInfo carries the non-secret account fields echoed back on login.
// The password hash is never part of any response.
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// LoginResponse is the success payload for the /login endpoint.
type LoginResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}
