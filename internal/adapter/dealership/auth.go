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

func (c *Client) Register(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	const op = "register"

	input := &models.RegisterInput{
		Email:    strfmt.Email(reg.Email),
		Username: reg.Username,
		Password: strfmt.Password(reg.Password),
		FullName: reg.FullName,
	}
	if err := input.Validate(c.formats); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &domain.ValidationError{Message: err.Error()})
	}

	payload := new(models.User)
	err := c.submit(ctx, operation{
		id:     op,
		method: http.MethodPost,
		path:   "/auth/register",
		params: func(r runtime.ClientRequest, _ strfmt.Registry) error {
			return r.SetBodyParam(input)
		},
	}, payload)
	if err != nil {
		return nil, err
	}
	return userFromModel(payload), nil
}

func (c *Client) Login(ctx context.Context, creds *domain.Credentials) (string, *domain.User, error) {
	payload := new(models.Token)
	err := c.submit(ctx, operation{
		id:       "login",
		method:   http.MethodPost,
		path:     "/auth/login",
		consumes: mediaForm,
		params: func(r runtime.ClientRequest, _ strfmt.Registry) error {
			if err := r.SetFormParam("username", creds.Username); err != nil {
				return err
			}
			return r.SetFormParam("password", creds.Password)
		},
	}, payload)
	if err != nil {
		return "", nil, err
	}
	return payload.AccessToken, userFromModel(payload.User), nil
}
