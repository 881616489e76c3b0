package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"
)

const favoritesTTL = 5 * time.Minute

type FavoritesService struct {
	api    ports.FavoritesAPI
	logger ports.LoggerPort
	cache  ports.CachePort
}

func NewFavoritesService(api ports.FavoritesAPI, logger ports.LoggerPort, cache ports.CachePort) *FavoritesService {
	return &FavoritesService{
		api:    api,
		logger: logger,
		cache:  cache,
	}
}

func favoritesKey(userID int64) string {
	return fmt.Sprintf("favorites:%d", userID)
}

// authorizeCustomer admits customer sessions and rejects other roles with rejection.
func authorizeCustomer(session *domain.Session, rejection *domain.AuthError) error {
	if session == nil || session.Token == "" {
		return domain.ErrUnauthenticated
	}
	if !session.IsCustomer() {
		return rejection
	}
	return nil
}

// Overlay returns the favorite ids of the session user. Anonymous and
// non-customer sessions get an empty set, as does any failure.
func (s *FavoritesService) Overlay(ctx context.Context, session *domain.Session) domain.FavoriteSet {
	if !session.IsCustomer() {
		return domain.NewFavoriteSet()
	}

	key := favoritesKey(session.User.ID)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var ids []int64
		if err := json.Unmarshal(data, &ids); err == nil {
			return domain.NewFavoriteSet(ids...)
		}
	}

	favorites, err := s.api.ListFavorites(ctx, session.Token)
	if err != nil {
		s.logger.Warn("Failed to load favorites overlay", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
		})
		return domain.NewFavoriteSet()
	}

	set := domain.FavoriteSetFrom(favorites)
	s.store(ctx, session.User.ID, set)
	return set
}

func (s *FavoritesService) store(ctx context.Context, userID int64, set domain.FavoriteSet) {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, favoritesKey(userID), data, favoritesTTL); err != nil {
		s.logger.Warn("Failed to cache favorites", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
	}
}

func (s *FavoritesService) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.Delete(ctx, favoritesKey(userID)); err != nil {
		s.logger.Warn("Failed to invalidate favorites cache", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
	}
}

func (s *FavoritesService) List(ctx context.Context, session *domain.Session) ([]*domain.Favorite, error) {
	if err := authorizeCustomer(session, domain.ErrCustomersOnly); err != nil {
		return nil, err
	}

	favorites, err := s.api.ListFavorites(ctx, session.Token)
	if err != nil {
		s.logger.Error("Failed to list favorites", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
		})
		return nil, err
	}

	s.store(ctx, session.User.ID, domain.FavoriteSetFrom(favorites))
	return favorites, nil
}

// Add favorites a vehicle. The cached set changes only after the API
// confirms the mutation.
func (s *FavoritesService) Add(ctx context.Context, session *domain.Session, vehicleID int64) error {
	return s.toggle(ctx, session, vehicleID, true)
}

func (s *FavoritesService) Remove(ctx context.Context, session *domain.Session, vehicleID int64) error {
	return s.toggle(ctx, session, vehicleID, false)
}

func (s *FavoritesService) toggle(ctx context.Context, session *domain.Session, vehicleID int64, add bool) error {
	if err := authorizeCustomer(session, domain.ErrCustomersOnly); err != nil {
		return err
	}

	var err error
	if add {
		err = s.api.AddFavorite(ctx, session.Token, vehicleID)
	} else {
		err = s.api.RemoveFavorite(ctx, session.Token, vehicleID)
	}
	if err != nil {
		s.logger.Error("Failed to update favorite", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
			"car_id":  vehicleID,
			"add":     add,
		})
		return err
	}

	s.invalidate(ctx, session.User.ID)

	s.logger.Info("Favorite updated", map[string]interface{}{
		"user_id": session.User.ID,
		"car_id":  vehicleID,
		"add":     add,
	})
	return nil
}
