package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

type TrashReport struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	TrashType   string    `gorm:"type:varchar(100);not null" json:"trash_type"`
	Quantity    float64   `gorm:"not null" json:"quantity"`
	ImageBase64 *string   `gorm:"type:text" json:"image_base64"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	ReportedAt  time.Time `gorm:"autoCreateTime" json:"reported_at"`
}
