package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
}

// LoginResponse echoes the authenticated identity at the top level.
// The password hash is never part of it.
type LoginResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}
