package dealership

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/elitemotors/storefront/internal/adapter/dealership/models"
	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	mediaJSON = "application/json"
	mediaForm = "application/x-www-form-urlencoded"
)

var _ ports.DealershipAPI = (*Client)(nil)

// Client talks to the dealership REST API.
type Client struct {
	transport runtime.ClientTransport
	formats   strfmt.Registry
	logger    ports.LoggerPort
}

func New(transport runtime.ClientTransport, formats strfmt.Registry, logger ports.LoggerPort) *Client {
	if formats == nil {
		formats = strfmt.Default
	}
	return &Client{
		transport: transport,
		formats:   formats,
		logger:    logger,
	}
}

// NewTransport returns a go-openapi runtime whose outbound requests are
// traced and bounded by timeout.
func NewTransport(host, basePath string, schemes []string, timeout time.Duration) *httptransport.Runtime {
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return httptransport.NewWithClient(host, basePath, schemes, httpClient)
}

type operation struct {
	id       string
	method   string
	path     string
	consumes string
	params   runtime.ClientRequestWriterFunc
	auth     runtime.ClientAuthInfoWriter
}

type validatable interface {
	Validate(strfmt.Registry) error
}

// submit runs op and decodes a 2xx body into out when out is non-nil.
// Failures come back classified into the domain error taxonomy.
func (c *Client) submit(ctx context.Context, op operation, out interface{}) error {
	consumes := op.consumes
	if consumes == "" {
		consumes = mediaJSON
	}
	params := op.params
	if params == nil {
		params = func(runtime.ClientRequest, strfmt.Registry) error { return nil }
	}

	c.logger.Debug("Calling dealership API", map[string]interface{}{
		"op":     op.id,
		"method": op.method,
		"path":   op.path,
	})

	_, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 op.id,
		Method:             op.method,
		PathPattern:        op.path,
		ProducesMediaTypes: []string{mediaJSON},
		ConsumesMediaTypes: []string{consumes},
		Params:             params,
		Reader:             responseReader(op.id, out),
		AuthInfo:           op.auth,
		Context:            ctx,
	})
	if err != nil {
		classified := classify(op.id, err)
		c.logger.Warn("Dealership API call failed", map[string]interface{}{
			"op":    op.id,
			"error": classified.Error(),
		})
		return classified
	}

	if v, ok := out.(validatable); ok {
		if err := v.Validate(c.formats); err != nil {
			return fmt.Errorf("%s: invalid response: %w: %v", op.id, domain.ErrNetwork, err)
		}
	}
	return nil
}

func responseReader(opID string, out interface{}) runtime.ClientResponseReaderFunc {
	return func(response runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
		code := response.Code()
		if code >= 200 && code < 300 {
			if out == nil || code == http.StatusNoContent {
				return nil, nil
			}
			if err := consumer.Consume(response.Body(), out); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return out, nil
		}

		payload := new(models.ErrorResponse)
		if err := consumer.Consume(response.Body(), payload); err != nil && !errors.Is(err, io.EOF) {
			payload = nil
		}
		return nil, runtime.NewAPIError(opID, payload, code)
	}
}

// classify maps API status codes onto domain errors. Anything that is not
// a recognised API answer counts as a network failure.
func classify(opID string, err error) error {
	var apiErr *runtime.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w: %v", opID, domain.ErrNetwork, err)
	}

	payload, _ := apiErr.Response.(*models.ErrorResponse)
	detail := payload.Message()

	switch apiErr.Code {
	case http.StatusUnauthorized:
		if detail == "" {
			return fmt.Errorf("%s: %w", opID, domain.ErrUnauthenticated)
		}
		return fmt.Errorf("%s: %w", opID, &domain.AuthError{Unauthenticated: true, Message: detail})
	case http.StatusForbidden:
		if detail == "" {
			detail = "Access denied"
		}
		return fmt.Errorf("%s: %w", opID, &domain.AuthError{Message: detail})
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", opID, domain.ErrNotFound)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		if detail == "" {
			detail = "Request rejected by the dealership"
		}
		return fmt.Errorf("%s: %w", opID, &domain.ValidationError{Message: detail})
	}
	return fmt.Errorf("%s: %w: status %d", opID, domain.ErrNetwork, apiErr.Code)
}

// bearer builds the auth writer for a user-scoped call. A missing token
// fails before any request is made.
func bearer(token string) (runtime.ClientAuthInfoWriter, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	return httptransport.BearerToken(token), nil
}
