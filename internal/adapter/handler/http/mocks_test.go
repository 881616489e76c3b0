package http

import (
	"context"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type nopMetrics struct{}

func (nopMetrics) RecordMetrics(*gin.Context, time.Time) {}
func (nopMetrics) RecordCatalogLoad(string, int)         {}

type mockDealership struct {
	mock.Mock
}

func (m *mockDealership) ListCars(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	cars, _ := args.Get(0).([]domain.Vehicle)
	return cars, args.Error(1)
}

func (m *mockDealership) ListFeaturedCars(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	cars, _ := args.Get(0).([]domain.Vehicle)
	return cars, args.Error(1)
}

func (m *mockDealership) GetCar(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*domain.Vehicle)
	return car, args.Error(1)
}

func (m *mockDealership) CreateCar(ctx context.Context, token string, car *domain.Vehicle) (*domain.Vehicle, error) {
	args := m.Called(ctx, token, car)
	created, _ := args.Get(0).(*domain.Vehicle)
	return created, args.Error(1)
}

func (m *mockDealership) UpdateCar(ctx context.Context, token string, car *domain.Vehicle) (*domain.Vehicle, error) {
	args := m.Called(ctx, token, car)
	updated, _ := args.Get(0).(*domain.Vehicle)
	return updated, args.Error(1)
}

func (m *mockDealership) DeleteCar(ctx context.Context, token string, id int64) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *mockDealership) Register(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	args := m.Called(ctx, reg)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockDealership) Login(ctx context.Context, creds *domain.Credentials) (string, *domain.User, error) {
	args := m.Called(ctx, creds)
	user, _ := args.Get(1).(*domain.User)
	return args.String(0), user, args.Error(2)
}

func (m *mockDealership) ListFavorites(ctx context.Context, token string) ([]*domain.Favorite, error) {
	args := m.Called(ctx, token)
	favorites, _ := args.Get(0).([]*domain.Favorite)
	return favorites, args.Error(1)
}

func (m *mockDealership) AddFavorite(ctx context.Context, token string, vehicleID int64) error {
	return m.Called(ctx, token, vehicleID).Error(0)
}

func (m *mockDealership) RemoveFavorite(ctx context.Context, token string, vehicleID int64) error {
	return m.Called(ctx, token, vehicleID).Error(0)
}

func (m *mockDealership) SubmitTestDrive(ctx context.Context, token string, req *domain.TestDriveRequest) (*domain.TestDrive, error) {
	args := m.Called(ctx, token, req)
	drive, _ := args.Get(0).(*domain.TestDrive)
	return drive, args.Error(1)
}

func (m *mockDealership) ListMyTestDrives(ctx context.Context, token string) ([]*domain.TestDrive, error) {
	args := m.Called(ctx, token)
	drives, _ := args.Get(0).([]*domain.TestDrive)
	return drives, args.Error(1)
}

func (m *mockDealership) ListOwnerTestDrives(ctx context.Context, token string) ([]*domain.TestDrive, error) {
	args := m.Called(ctx, token)
	drives, _ := args.Get(0).([]*domain.TestDrive)
	return drives, args.Error(1)
}

func (m *mockDealership) UpdateTestDriveStatus(ctx context.Context, token string, id int64, status domain.TestDriveStatus) error {
	return m.Called(ctx, token, id, status).Error(0)
}

func (m *mockDealership) ListUsers(ctx context.Context, token string) ([]*domain.User, error) {
	args := m.Called(ctx, token)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *mockDealership) UpdateUserRole(ctx context.Context, token string, id int64, role domain.UserRole) error {
	return m.Called(ctx, token, id, role).Error(0)
}

func (m *mockDealership) DeleteUser(ctx context.Context, token string, id int64) error {
	return m.Called(ctx, token, id).Error(0)
}
