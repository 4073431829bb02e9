package payload

import (
	"wildwaste/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Password: r.Password,
	}
}
