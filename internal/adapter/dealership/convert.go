package dealership

import (
	"time"

	"github.com/elitemotors/storefront/internal/adapter/dealership/models"
	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

// The API calls the customer role "user".
func roleFromAPI(role string) domain.UserRole {
	if role == models.RoleUser {
		return domain.Customer
	}
	return domain.UserRole(role)
}

func roleToAPI(role domain.UserRole) string {
	if role == domain.Customer {
		return models.RoleUser
	}
	return string(role)
}

func vehicleFromModel(m *models.Car) domain.Vehicle {
	v := domain.Vehicle{
		ID:          m.ID,
		Name:        swag.StringValue(m.Name),
		Price:       int(m.Price),
		Year:        int(m.Year),
		Mileage:     int(m.Mileage),
		ImageURL:    m.Image,
		Featured:    m.Featured,
		Description: m.Description,
		Color:       m.Color,
	}
	if m.Specs != nil {
		v.Specs = domain.Specs{
			Engine:       m.Specs.Engine,
			Transmission: m.Specs.Transmission,
			Fuel:         m.Specs.Fuel,
		}
	}
	return v
}

func vehiclesFromModels(ms []*models.Car) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(ms))
	for _, m := range ms {
		if m == nil {
			continue
		}
		out = append(out, vehicleFromModel(m))
	}
	return out
}

func carInputFromVehicle(v *domain.Vehicle) *models.CarInput {
	return &models.CarInput{
		Name:        v.Name,
		Price:       int64(v.Price),
		Year:        int64(v.Year),
		Mileage:     int64(v.Mileage),
		Image:       v.ImageURL,
		Featured:    v.Featured,
		Description: v.Description,
		Color:       v.Color,
		Specs: &models.CarSpecs{
			Engine:       v.Specs.Engine,
			Transmission: v.Specs.Transmission,
			Fuel:         v.Specs.Fuel,
		},
	}
}

func userFromModel(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email.String(),
		FullName:  m.FullName,
		Role:      roleFromAPI(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: time.Time(m.CreatedAt),
	}
}

func testDriveFromModel(m *models.TestDrive) *domain.TestDrive {
	td := &domain.TestDrive{
		ID:        m.ID,
		User:      userFromModel(m.User),
		Date:      m.PreferredDate.String(),
		Time:      m.PreferredTime,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    domain.TestDriveStatus(m.Status),
		CreatedAt: time.Time(m.CreatedAt),
	}
	if m.Car != nil {
		td.Vehicle = vehicleFromModel(m.Car)
	} else {
		td.Vehicle.ID = m.CarID
	}
	return td
}

func testDriveInputFromRequest(req *domain.TestDriveRequest) (*models.TestDriveInput, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, &domain.ValidationError{Message: "Invalid preferred date"}
	}
	return &models.TestDriveInput{
		CarID:         req.VehicleID,
		PreferredDate: strfmt.Date(date),
		PreferredTime: req.Time,
		Phone:         req.Phone,
		Message:       req.Message,
	}, nil
}

func favoriteFromModel(m *models.Favorite) *domain.Favorite {
	f := &domain.Favorite{ID: m.FavoriteID}
	if m.Car != nil {
		f.VehicleID = m.Car.ID
		f.Vehicle = vehicleFromModel(m.Car)
	}
	return f
}
