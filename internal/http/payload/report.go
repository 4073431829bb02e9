package payload

import (
	"wildwaste/internal/core"

	"github.com/jellydator/validation"
)

// ReportRequest carries a new trash report. The required numeric
// fields are pointers so a legitimate zero coordinate is not mistaken
// for a missing one.
type ReportRequest struct {
	UserID      *uint    `json:"user_id"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	TrashType   string   `json:"trash_type"`
	Quantity    *float64 `json:"quantity"`
	ImageBase64 *string  `json:"image_base64"`
	Notes       *string  `json:"notes"`
}

func (r ReportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.NotNil),
		validation.Field(&r.Latitude, validation.NotNil),
		validation.Field(&r.Longitude, validation.NotNil),
		validation.Field(&r.TrashType, validation.Required),
		validation.Field(&r.Quantity, validation.NotNil),
	)
}

func (r ReportRequest) ToMessage() core.ReportMessage {
	return core.ReportMessage{
		UserID:      *r.UserID,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		TrashType:   r.TrashType,
		Quantity:    *r.Quantity,
		ImageBase64: r.ImageBase64,
		Notes:       r.Notes,
	}
}
