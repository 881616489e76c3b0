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

func (c *Client) SubmitTestDrive(ctx context.Context, token string, req *domain.TestDriveRequest) (*domain.TestDrive, error) {
	const op = "submitTestDrive"

	auth, err := bearer(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	input, err := testDriveInputFromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := input.Validate(c.formats); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &domain.ValidationError{Message: err.Error()})
	}

	payload := new(models.TestDrive)
	err = c.submit(ctx, operation{
		id:     op,
		method: http.MethodPost,
		path:   "/test-drives",
		auth:   auth,
		params: func(r runtime.ClientRequest, _ strfmt.Registry) error {
			return r.SetBodyParam(input)
		},
	}, payload)
	if err != nil {
		return nil, err
	}
	return testDriveFromModel(payload), nil
}

func (c *Client) ListMyTestDrives(ctx context.Context, token string) ([]*domain.TestDrive, error) {
	return c.listTestDrives(ctx, token, "listMyTestDrives", "/test-drives")
}

func (c *Client) ListOwnerTestDrives(ctx context.Context, token string) ([]*domain.TestDrive, error) {
	return c.listTestDrives(ctx, token, "listOwnerTestDrives", "/owner/test-drives")
}

func (c *Client) listTestDrives(ctx context.Context, token, opID, path string) ([]*domain.TestDrive, error) {
	auth, err := bearer(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opID, err)
	}

	var payload []*models.TestDrive
	err = c.submit(ctx, operation{
		id:     opID,
		method: http.MethodGet,
		path:   path,
		auth:   auth,
	}, &payload)
	if err != nil {
		return nil, err
	}

	drives := make([]*domain.TestDrive, 0, len(payload))
	for _, m := range payload {
		if m == nil {
			continue
		}
		if err := m.Validate(c.formats); err != nil {
			return nil, fmt.Errorf("%s: invalid response: %w: %v", opID, domain.ErrNetwork, err)
		}
		drives = append(drives, testDriveFromModel(m))
	}
	return drives, nil
}

func (c *Client) UpdateTestDriveStatus(ctx context.Context, token string, id int64, status domain.TestDriveStatus) error {
	const op = "updateTestDriveStatus"

	auth, err := bearer(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	body := &models.StatusUpdate{Status: string(status)}
	if err := body.Validate(c.formats); err != nil {
		return fmt.Errorf("%s: %w", op, &domain.ValidationError{Message: err.Error()})
	}

	return c.submit(ctx, operation{
		id:     op,
		method: http.MethodPut,
		path:   "/owner/test-drives/{id}/status",
		auth:   auth,
		params: func(r runtime.ClientRequest, reg strfmt.Registry) error {
			if err := pathID(id)(r, reg); err != nil {
				return err
			}
			return r.SetBodyParam(body)
		},
	}, nil)
}
