package dealership

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elitemotors/storefront/internal/adapter/dealership/models"
	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
)

func (c *Client) ListCars(ctx context.Context) ([]domain.Vehicle, error) {
	return c.listCars(ctx, "listCars", "/cars")
}

func (c *Client) ListFeaturedCars(ctx context.Context) ([]domain.Vehicle, error) {
	return c.listCars(ctx, "listFeaturedCars", "/cars/featured")
}

func (c *Client) listCars(ctx context.Context, opID, path string) ([]domain.Vehicle, error) {
	var payload []*models.Car
	err := c.submit(ctx, operation{
		id:     opID,
		method: http.MethodGet,
		path:   path,
	}, &payload)
	if err != nil {
		return nil, err
	}

	valid := payload[:0]
	for _, m := range payload {
		if m == nil {
			continue
		}
		if err := m.Validate(c.formats); err != nil {
			c.logger.Warn("Skipping invalid car record", map[string]interface{}{
				"op":     opID,
				"car_id": m.ID,
				"error":  err.Error(),
			})
			continue
		}
		valid = append(valid, m)
	}
	return vehiclesFromModels(valid), nil
}

func (c *Client) GetCar(ctx context.Context, id int64) (*domain.Vehicle, error) {
	payload := new(models.Car)
	err := c.submit(ctx, operation{
		id:     "getCar",
		method: http.MethodGet,
		path:   "/cars/{id}",
		params: pathID(id),
	}, payload)
	if err != nil {
		return nil, err
	}
	v := vehicleFromModel(payload)
	return &v, nil
}

func (c *Client) CreateCar(ctx context.Context, token string, car *domain.Vehicle) (*domain.Vehicle, error) {
	return c.writeCar(ctx, token, "createCar", http.MethodPost, "/cars", car, nil)
}

func (c *Client) UpdateCar(ctx context.Context, token string, car *domain.Vehicle) (*domain.Vehicle, error) {
	return c.writeCar(ctx, token, "updateCar", http.MethodPut, "/cars/{id}", car, pathID(car.ID))
}

func (c *Client) writeCar(
	ctx context.Context,
	token, opID, method, path string,
	car *domain.Vehicle,
	withPath runtime.ClientRequestWriterFunc,
) (*domain.Vehicle, error) {
	auth, err := bearer(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opID, err)
	}

	input := carInputFromVehicle(car)
	if err := input.Validate(c.formats); err != nil {
		return nil, fmt.Errorf("%s: %w", opID, &domain.ValidationError{Message: err.Error()})
	}

	payload := new(models.Car)
	err = c.submit(ctx, operation{
		id:     opID,
		method: method,
		path:   path,
		auth:   auth,
		params: func(r runtime.ClientRequest, reg strfmt.Registry) error {
			if withPath != nil {
				if err := withPath(r, reg); err != nil {
					return err
				}
			}
			return r.SetBodyParam(input)
		},
	}, payload)
	if err != nil {
		return nil, err
	}
	v := vehicleFromModel(payload)
	return &v, nil
}

func (c *Client) DeleteCar(ctx context.Context, token string, id int64) error {
	auth, err := bearer(token)
	if err != nil {
		return fmt.Errorf("deleteCar: %w", err)
	}
	return c.submit(ctx, operation{
		id:     "deleteCar",
		method: http.MethodDelete,
		path:   "/cars/{id}",
		params: pathID(id),
		auth:   auth,
	}, nil)
}

func pathID(id int64) runtime.ClientRequestWriterFunc {
	return pathParam("id", id)
}

func pathParam(name string, id int64) runtime.ClientRequestWriterFunc {
	return func(r runtime.ClientRequest, _ strfmt.Registry) error {
		return r.SetPathParam(name, strconv.FormatInt(id, 10))
	}
}
