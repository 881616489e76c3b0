package models

import (
	"github.com/go-openapi/strfmt"
)

// Favorite favorite
//
// swagger:model Favorite
type Favorite struct {

	// favorite id
	FavoriteID int64 `json:"favorite_id"`

	// car
	Car *Car `json:"car"`
}

// Validate validates this favorite
func (m *Favorite) Validate(formats strfmt.Registry) error {
	if m.Car == nil {
		return nil
	}
	return m.Car.Validate(formats)
}

// ErrorResponse error response
//
// swagger:model ErrorResponse
type ErrorResponse struct {

	// detail is a message, or a list of field errors on 422
	Detail interface{} `json:"detail"`
}

// Message returns the detail when it is a plain message.
func (m *ErrorResponse) Message() string {
	if m == nil {
		return ""
	}
	if s, ok := m.Detail.(string); ok {
		return s
	}
	return ""
}
