package dealership

import (
	"context"
	"fmt"
	"net/http"

	"github.com/elitemotors/storefront/internal/adapter/dealership/models"
	"github.com/elitemotors/storefront/internal/core/domain"
)

func (c *Client) ListFavorites(ctx context.Context, token string) ([]*domain.Favorite, error) {
	const op = "listFavorites"

	auth, err := bearer(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var payload []*models.Favorite
	err = c.submit(ctx, operation{
		id:     op,
		method: http.MethodGet,
		path:   "/favorites",
		auth:   auth,
	}, &payload)
	if err != nil {
		return nil, err
	}

	favorites := make([]*domain.Favorite, 0, len(payload))
	for _, m := range payload {
		if m == nil {
			continue
		}
		favorites = append(favorites, favoriteFromModel(m))
	}
	return favorites, nil
}

func (c *Client) AddFavorite(ctx context.Context, token string, vehicleID int64) error {
	return c.toggleFavorite(ctx, token, "addFavorite", http.MethodPost, vehicleID)
}

func (c *Client) RemoveFavorite(ctx context.Context, token string, vehicleID int64) error {
	return c.toggleFavorite(ctx, token, "removeFavorite", http.MethodDelete, vehicleID)
}

func (c *Client) toggleFavorite(ctx context.Context, token, opID, method string, vehicleID int64) error {
	auth, err := bearer(token)
	if err != nil {
		return fmt.Errorf("%s: %w", opID, err)
	}
	return c.submit(ctx, operation{
		id:     opID,
		method: method,
		path:   "/favorites/{car_id}",
		params: pathParam("car_id", vehicleID),
		auth:   auth,
	}, nil)
}
