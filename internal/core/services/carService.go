package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

const carCacheTTL = 15 * time.Minute

type CarService struct {
	api      ports.CarAPI
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewCarService(
	api ports.CarAPI,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CarService {
	return &CarService{
		api:      api,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func carCacheKey(id int64) string {
	return fmt.Sprintf("car:%d", id)
}

func authorizeOwner(session *domain.Session) error {
	if session == nil || session.Token == "" {
		return domain.ErrUnauthenticated
	}
	if !session.HasRole(domain.Owner, domain.Admin) {
		return domain.ErrOwnersOnly
	}
	return nil
}

func (s *CarService) GetCar(ctx context.Context, id int64) (*domain.Vehicle, error) {
	cacheKey := carCacheKey(id)
	cachedData, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var cachedCar domain.Vehicle
		if err := json.Unmarshal(cachedData, &cachedCar); err == nil {
			s.logger.Debug("Car found in cache", map[string]interface{}{
				"car_id": id,
			})
			return &cachedCar, nil
		}
	}

	car, err := s.api.GetCar(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": id,
		})
		return nil, err
	}

	carData, err := json.Marshal(car)
	if err != nil {
		s.logger.Warn("Failed to marshal car for cache", map[string]interface{}{
			"error":  err.Error(),
			"car_id": id,
		})
	} else {
		if err := s.cache.Set(ctx, cacheKey, carData, carCacheTTL); err != nil {
			s.logger.Warn("Failed to cache car", map[string]interface{}{
				"error":  err.Error(),
				"car_id": id,
			})
		}
	}

	return car, nil
}

// Featured lists home-page cars. Failures yield an empty list.
func (s *CarService) Featured(ctx context.Context) []domain.Vehicle {
	cars, err := s.api.ListFeaturedCars(ctx)
	if err != nil {
		s.logger.Warn("Failed to load featured cars", map[string]interface{}{
			"error": err.Error(),
		})
		return []domain.Vehicle{}
	}
	return cars
}

// ListForOwner lists the full inventory for the management screens.
func (s *CarService) ListForOwner(ctx context.Context, session *domain.Session) ([]domain.Vehicle, error) {
	if err := authorizeOwner(session); err != nil {
		return nil, err
	}

	cars, err := s.api.ListCars(ctx)
	if err != nil {
		s.logger.Error("Failed to list cars", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
		})
		return nil, err
	}
	return cars, nil
}

func (s *CarService) CreateCar(ctx context.Context, session *domain.Session, car *domain.Vehicle) (*domain.Vehicle, error) {
	if err := authorizeOwner(session); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(car); err != nil {
		s.logger.Error("Car validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	created, err := s.api.CreateCar(ctx, session.Token, car)
	if err != nil {
		s.logger.Error("Failed to create car", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
		})
		return nil, err
	}

	s.logger.Info("Car created successfully", map[string]interface{}{
		"car_id":  created.ID,
		"user_id": session.User.ID,
	})

	return created, nil
}

func (s *CarService) UpdateCar(ctx context.Context, session *domain.Session, car *domain.Vehicle) (*domain.Vehicle, error) {
	if err := authorizeOwner(session); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(car); err != nil {
		s.logger.Error("Car validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	updated, err := s.api.UpdateCar(ctx, session.Token, car)
	if err != nil {
		s.logger.Error("Failed to update car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": car.ID,
		})
		return nil, err
	}

	s.invalidate(ctx, car.ID)

	s.logger.Info("Car updated successfully", map[string]interface{}{
		"car_id": car.ID,
	})

	return updated, nil
}

func (s *CarService) DeleteCar(ctx context.Context, session *domain.Session, id int64) error {
	if err := authorizeOwner(session); err != nil {
		return err
	}

	if err := s.api.DeleteCar(ctx, session.Token, id); err != nil {
		s.logger.Error("Failed to delete car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": id,
		})
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Car deleted successfully", map[string]interface{}{
		"car_id": id,
	})

	return nil
}

func (s *CarService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, carCacheKey(id)); err != nil {
		s.logger.Warn("Failed to invalidate car cache", map[string]interface{}{
			"error":  err.Error(),
			"car_id": id,
		})
	}
}
