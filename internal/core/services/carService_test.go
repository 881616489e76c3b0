package services

import (
	"context"
	"testing"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCarService_GetCarCachesAndInvalidates(t *testing.T) {
	api := new(mockDealership)
	cache := newMemoryCache()
	svc := NewCarService(api, nopLogger{}, NewValidator(), cache)
	ctx := context.Background()

	car := sampleCatalog()[0]
	api.On("GetCar", mock.Anything, int64(1)).Return(&car, nil).Once()

	got, err := svc.GetCar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2023 BMW M5", got.Name)
	assert.True(t, cache.has("car:1"))

	got, err = svc.GetCar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Black", got.ColorValue())
	api.AssertNumberOfCalls(t, "GetCar", 1)

	updated := car
	updated.Price = 75000
	api.On("UpdateCar", mock.Anything, "owner-token", &updated).Return(&updated, nil)

	_, err = svc.UpdateCar(ctx, ownerSession(), &updated)
	require.NoError(t, err)
	assert.False(t, cache.has("car:1"))
}

func TestCarService_GetCarKeepsUnsetColor(t *testing.T) {
	api := new(mockDealership)
	cache := newMemoryCache()
	svc := NewCarService(api, nopLogger{}, NewValidator(), cache)

	car := sampleCatalog()[1]
	api.On("GetCar", mock.Anything, int64(2)).Return(&car, nil).Once()

	_, err := svc.GetCar(context.Background(), 2)
	require.NoError(t, err)

	cached, err := svc.GetCar(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, cached.Color)
}

func TestCarService_GetCarNotFound(t *testing.T) {
	api := new(mockDealership)
	svc := NewCarService(api, nopLogger{}, NewValidator(), newMemoryCache())
	api.On("GetCar", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := svc.GetCar(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCarService_FeaturedFailsSoft(t *testing.T) {
	api := new(mockDealership)
	svc := NewCarService(api, nopLogger{}, NewValidator(), newMemoryCache())
	api.On("ListFeaturedCars", mock.Anything).Return(nil, domain.ErrNetwork)

	featured := svc.Featured(context.Background())
	assert.NotNil(t, featured)
	assert.Empty(t, featured)
}

func TestCarService_WritesRequireOwner(t *testing.T) {
	api := new(mockDealership)
	svc := NewCarService(api, nopLogger{}, NewValidator(), newMemoryCache())
	ctx := context.Background()
	car := &domain.Vehicle{Name: "2024 Audi RS6", Year: 2024}

	_, err := svc.CreateCar(ctx, nil, car)
	assert.True(t, domain.IsUnauthenticated(err))

	_, err = svc.CreateCar(ctx, customerSession(), car)
	assert.Equal(t, domain.ErrOwnersOnly, err)

	err = svc.DeleteCar(ctx, customerSession(), 1)
	assert.Equal(t, domain.ErrOwnersOnly, err)

	_, err = svc.ListForOwner(ctx, customerSession())
	assert.Equal(t, domain.ErrOwnersOnly, err)

	api.AssertNotCalled(t, "CreateCar", mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "DeleteCar", mock.Anything, mock.Anything, mock.Anything)
}

func TestCarService_CreateValidates(t *testing.T) {
	api := new(mockDealership)
	svc := NewCarService(api, nopLogger{}, NewValidator(), newMemoryCache())
	ctx := context.Background()

	_, err := svc.CreateCar(ctx, adminSession(), &domain.Vehicle{Name: "", Year: 1899, Price: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
	reason := domain.Reason(err, "")
	assert.Contains(t, reason, "name is required")
	assert.Contains(t, reason, "year must be at least 1900")
	assert.Contains(t, reason, "price must be at least 0")

	car := &domain.Vehicle{Name: "2024 Audi RS6", Year: 2024, Price: 120000}
	created := *car
	created.ID = 12
	api.On("CreateCar", mock.Anything, "admin-token", car).Return(&created, nil)

	got, err := svc.CreateCar(ctx, adminSession(), car)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
}

func TestCarService_DeleteInvalidates(t *testing.T) {
	api := new(mockDealership)
	cache := newMemoryCache()
	svc := NewCarService(api, nopLogger{}, NewValidator(), cache)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "car:3", []byte(`{"id":3}`), 0))
	api.On("DeleteCar", mock.Anything, "owner-token", int64(3)).Return(nil)

	require.NoError(t, svc.DeleteCar(ctx, ownerSession(), 3))
	assert.False(t, cache.has("car:3"))
}
