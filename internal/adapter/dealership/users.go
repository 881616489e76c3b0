package dealership

import (
	"context"
	"fmt"
	"net/http"

	"github.com/elitemotors/storefront/internal/adapter/dealership/models"
	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]*domain.User, error) {
	const op = "listUsers"

	auth, err := bearer(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var payload []*models.User
	err = c.submit(ctx, operation{
		id:     op,
		method: http.MethodGet,
		path:   "/admin/users",
		auth:   auth,
	}, &payload)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(payload))
	for _, m := range payload {
		if m == nil {
			continue
		}
		users = append(users, userFromModel(m))
	}
	return users, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, token string, id int64, role domain.UserRole) error {
	const op = "updateUserRole"

	auth, err := bearer(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	body := &models.RoleUpdate{Role: roleToAPI(role)}
	if err := body.Validate(c.formats); err != nil {
		return fmt.Errorf("%s: %w", op, &domain.ValidationError{Message: err.Error()})
	}

	return c.submit(ctx, operation{
		id:     op,
		method: http.MethodPut,
		path:   "/admin/users/{id}/role",
		auth:   auth,
		params: func(r runtime.ClientRequest, reg strfmt.Registry) error {
			if err := pathID(id)(r, reg); err != nil {
				return err
			}
			return r.SetBodyParam(body)
		},
	}, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	const op = "deleteUser"

	auth, err := bearer(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return c.submit(ctx, operation{
		id:     op,
		method: http.MethodDelete,
		path:   "/admin/users/{id}",
		params: pathID(id),
		auth:   auth,
	}, nil)
}
