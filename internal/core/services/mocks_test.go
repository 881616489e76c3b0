package services

import (
	"context"
	"sync"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type recordingMetrics struct {
	mu      sync.Mutex
	results []string
}

func (m *recordingMetrics) RecordMetrics(*gin.Context, time.Time) {}

func (m *recordingMetrics) RecordCatalogLoad(result string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

// memoryCache is a map-backed CachePort.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

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

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	return m.Called(ctx, session, ttl).Error(0)
}

func (m *mockSessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*domain.Session)
	return session, args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(session *domain.Session, ttl time.Duration) (string, error) {
	args := m.Called(session, ttl)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	args := m.Called(token)
	payload, _ := args.Get(0).(*domain.TokenPayload)
	return payload, args.Error(1)
}

func customerSession() *domain.Session {
	return &domain.Session{
		ID:    uuid.New(),
		Token: "customer-token",
		User:  domain.User{ID: 7, Username: "jdoe", FullName: "Jane Doe", Role: domain.Customer},
	}
}

func ownerSession() *domain.Session {
	return &domain.Session{
		ID:    uuid.New(),
		Token: "owner-token",
		User:  domain.User{ID: 2, Username: "owner", Role: domain.Owner},
	}
}

func adminSession() *domain.Session {
	return &domain.Session{
		ID:    uuid.New(),
		Token: "admin-token",
		User:  domain.User{ID: 1, Username: "admin", Role: domain.Admin},
	}
}

func sampleCatalog() []domain.Vehicle {
	return []domain.Vehicle{
		{
			ID: 1, Name: "2023 BMW M5", Price: 78000, Year: 2023, Mileage: 5000,
			Color: domain.StringPtr("Black"),
			Specs: domain.Specs{Engine: "4.4L V8", Transmission: "Automatic", Fuel: "Gasoline"},
		},
		{
			ID: 2, Name: "2023 Tesla Model S", Price: 95000, Year: 2023, Mileage: 1000,
			Specs: domain.Specs{Engine: "Electric", Transmission: "Automatic", Fuel: "Electric"},
		},
	}
}
