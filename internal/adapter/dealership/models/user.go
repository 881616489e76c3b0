package models

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

var roleEnum = []interface{}{RoleUser, RoleOwner, RoleAdmin}

// User user
//
// swagger:model User
type User struct {

	// id
	ID int64 `json:"id"`

	// username
	// Required: true
	Username string `json:"username"`

	// email
	// Format: email
	Email strfmt.Email `json:"email"`

	// full name
	FullName string `json:"full_name,omitempty"`

	// role
	// Enum: ["user","owner","admin"]
	Role string `json:"role"`

	// is active
	IsActive bool `json:"is_active"`

	// created at
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"created_at,omitempty"`
}

// Validate validates this user
func (m *User) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("username", "body", m.Username); err != nil {
		res = append(res, err)
	}

	if err := validate.FormatOf("email", "body", "email", m.Email.String(), formats); err != nil {
		res = append(res, err)
	}

	if err := validate.EnumCase("role", "body", m.Role, roleEnum, true); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *User) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *User) UnmarshalBinary(b []byte) error {
	var res User
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// RegisterInput register input
//
// swagger:model RegisterInput
type RegisterInput struct {
	Email    strfmt.Email    `json:"email"`
	Username string          `json:"username"`
	Password strfmt.Password `json:"password"`
	FullName string          `json:"full_name"`
}

// Validate validates this register input
func (m *RegisterInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.FormatOf("email", "body", "email", m.Email.String(), formats); err != nil {
		res = append(res, err)
	}

	if err := validate.MinLength("username", "body", m.Username, 3); err != nil {
		res = append(res, err)
	}

	if err := validate.MaxLength("username", "body", m.Username, 50); err != nil {
		res = append(res, err)
	}

	if err := validate.MinLength("password", "body", m.Password.String(), 3); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Token token
//
// swagger:model Token
type Token struct {

	// access token
	// Required: true
	AccessToken string `json:"access_token"`

	// token type
	TokenType string `json:"token_type"`

	// user
	User *User `json:"user"`
}

// Validate validates this token
func (m *Token) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("access_token", "body", m.AccessToken); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("user", "body", m.User); err != nil {
		res = append(res, err)
	} else if err := m.User.Validate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// RoleUpdate role update
//
// swagger:model RoleUpdate
type RoleUpdate struct {
	Role string `json:"role"`
}

// Validate validates this role update
func (m *RoleUpdate) Validate(formats strfmt.Registry) error {
	if err := validate.EnumCase("role", "body", m.Role, roleEnum, true); err != nil {
		return err
	}
	return nil
}
