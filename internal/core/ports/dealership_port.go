package ports

import (
	"context"

	"github.com/elitemotors/storefront/internal/core/domain"
)

// CatalogSource is the read side of the inventory API.
type CatalogSource interface {
	ListCars(ctx context.Context) ([]domain.Vehicle, error)
}

type CarAPI interface {
	CatalogSource
	ListFeaturedCars(ctx context.Context) ([]domain.Vehicle, error)
	GetCar(ctx context.Context, id int64) (*domain.Vehicle, error)
	CreateCar(ctx context.Context, token string, car *domain.Vehicle) (*domain.Vehicle, error)
	UpdateCar(ctx context.Context, token string, car *domain.Vehicle) (*domain.Vehicle, error)
	DeleteCar(ctx context.Context, token string, id int64) error
}

type AuthAPI interface {
	Register(ctx context.Context, reg *domain.Registration) (*domain.User, error)
	// Login returns the API access token and the authenticated user.
	Login(ctx context.Context, creds *domain.Credentials) (string, *domain.User, error)
}

type FavoritesAPI interface {
	ListFavorites(ctx context.Context, token string) ([]*domain.Favorite, error)
	AddFavorite(ctx context.Context, token string, vehicleID int64) error
	RemoveFavorite(ctx context.Context, token string, vehicleID int64) error
}

type TestDriveAPI interface {
	SubmitTestDrive(ctx context.Context, token string, req *domain.TestDriveRequest) (*domain.TestDrive, error)
	ListMyTestDrives(ctx context.Context, token string) ([]*domain.TestDrive, error)
	ListOwnerTestDrives(ctx context.Context, token string) ([]*domain.TestDrive, error)
	UpdateTestDriveStatus(ctx context.Context, token string, id int64, status domain.TestDriveStatus) error
}

type UserAPI interface {
	ListUsers(ctx context.Context, token string) ([]*domain.User, error)
	UpdateUserRole(ctx context.Context, token string, id int64, role domain.UserRole) error
	DeleteUser(ctx context.Context, token string, id int64) error
}

// DealershipAPI is the full external REST collaborator.
type DealershipAPI interface {
	CarAPI
	AuthAPI
	FavoritesAPI
	TestDriveAPI
	UserAPI
}
