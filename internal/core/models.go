package core

import "time"

type RegisterMessage struct {
	Username string
	Password string
}

type AuthMessage struct {
	Username string
	Password string
}

type ReportMessage struct {
	UserID      uint
	Latitude    float64
	Longitude   float64
	TrashType   string
	Quantity    float64
	ImageBase64 *string
	Notes       *string
}

// UserRecord is the user shape returned to callers. It never carries
// the password hash.
type UserRecord struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type ReportRecord struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	TrashType   string    `json:"trash_type"`
	Quantity    float64   `json:"quantity"`
	ImageBase64 *string   `json:"image_base64"`
	Notes       *string   `json:"notes"`
	ReportedAt  time.Time `json:"reported_at"`
}
