package models

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

var statusEnum = []interface{}{"pending", "approved", "completed", "cancelled"}

// TestDrive test drive
//
// swagger:model TestDrive
type TestDrive struct {

	// id
	ID int64 `json:"id"`

	// car id
	CarID int64 `json:"car_id"`

	// car
	Car *Car `json:"car,omitempty"`

	// user
	User *User `json:"user,omitempty"`

	// preferred date
	// Format: date
	PreferredDate strfmt.Date `json:"preferred_date"`

	// preferred time
	PreferredTime string `json:"preferred_time"`

	// phone
	Phone string `json:"phone"`

	// message
	Message string `json:"message,omitempty"`

	// status
	// Enum: ["pending","approved","completed","cancelled"]
	Status string `json:"status"`

	// created at
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"created_at,omitempty"`
}

// Validate validates this test drive
func (m *TestDrive) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.EnumCase("status", "body", m.Status, statusEnum, true); err != nil {
		res = append(res, err)
	}

	if m.Car != nil {
		if err := m.Car.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *TestDrive) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *TestDrive) UnmarshalBinary(b []byte) error {
	var res TestDrive
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// TestDriveInput test drive input
//
// swagger:model TestDriveInput
type TestDriveInput struct {

	// car id
	// Minimum: 1
	CarID int64 `json:"car_id"`

	// preferred date
	// Format: date
	PreferredDate strfmt.Date `json:"preferred_date"`

	// preferred time
	PreferredTime string `json:"preferred_time"`

	// phone
	// Max Length: 20
	Phone string `json:"phone"`

	// message
	// Max Length: 1000
	Message string `json:"message,omitempty"`
}

// Validate validates this test drive input
func (m *TestDriveInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinimumInt("car_id", "body", m.CarID, 1, false); err != nil {
		res = append(res, err)
	}

	if err := validate.RequiredString("phone", "body", m.Phone); err != nil {
		res = append(res, err)
	}

	if err := validate.MaxLength("phone", "body", m.Phone, 20); err != nil {
		res = append(res, err)
	}

	if err := validate.MaxLength("message", "body", m.Message, 1000); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// StatusUpdate status update
//
// swagger:model StatusUpdate
type StatusUpdate struct {
	Status string `json:"status"`
}

// Validate validates this status update
func (m *StatusUpdate) Validate(formats strfmt.Registry) error {
	if err := validate.EnumCase("status", "body", m.Status, statusEnum, true); err != nil {
		return err
	}
	return nil
}
