package models

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// Car car
//
// swagger:model Car
type Car struct {

	// id
	// Required: true
	ID int64 `json:"id"`

	// name
	// Required: true
	Name *string `json:"name"`

	// price
	// Minimum: 0
	Price int64 `json:"price"`

	// year
	Year int64 `json:"year"`

	// mileage
	// Minimum: 0
	Mileage int64 `json:"mileage"`

	// image
	Image string `json:"image,omitempty"`

	// featured
	Featured bool `json:"featured"`

	// description
	Description string `json:"description,omitempty"`

	// color
	Color *string `json:"color"`

	// specs
	Specs *CarSpecs `json:"specs,omitempty"`
}

// Validate validates this car
func (m *Car) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("name", "body", m.Name); err != nil {
		res = append(res, err)
	}

	if err := validate.MinimumInt("price", "body", m.Price, 0, false); err != nil {
		res = append(res, err)
	}

	if err := validate.MinimumInt("mileage", "body", m.Mileage, 0, false); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *Car) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *Car) UnmarshalBinary(b []byte) error {
	var res Car
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// CarSpecs car specs
//
// swagger:model CarSpecs
type CarSpecs struct {
	Engine       string `json:"engine,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Fuel         string `json:"fuel,omitempty"`
}

// CarInput car create or update payload
//
// swagger:model CarInput
type CarInput struct {

	// name
	// Required: true
	// Max Length: 255
	Name string `json:"name"`

	// price
	// Minimum: 0
	Price int64 `json:"price"`

	// year
	// Minimum: 1900
	// Maximum: 2030
	Year int64 `json:"year"`

	// mileage
	// Minimum: 0
	Mileage int64 `json:"mileage"`

	Image       string    `json:"image,omitempty"`
	Featured    bool      `json:"featured"`
	Description string    `json:"description,omitempty"`
	Color       *string   `json:"color"`
	Specs       *CarSpecs `json:"specs,omitempty"`
}

// Validate validates this car input
func (m *CarInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("name", "body", m.Name); err != nil {
		res = append(res, err)
	}

	if err := validate.MaxLength("name", "body", m.Name, 255); err != nil {
		res = append(res, err)
	}

	if err := validate.MinimumInt("price", "body", m.Price, 0, false); err != nil {
		res = append(res, err)
	}

	if err := validate.MinimumInt("year", "body", m.Year, 1900, false); err != nil {
		res = append(res, err)
	}

	if err := validate.MaximumInt("year", "body", m.Year, 2030, false); err != nil {
		res = append(res, err)
	}

	if err := validate.MinimumInt("mileage", "body", m.Mileage, 0, false); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *CarInput) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *CarInput) UnmarshalBinary(b []byte) error {
	var res CarInput
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
