// Package backend is the read-only client for the platform REST API, which
// owns orders, users and products. Reporting never writes through it.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/dto"
	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/aurelia-jewels/reports-manager/internal/session"
	"github.com/go-resty/resty/v2"
)

// ErrUnauthorized is returned on HTTP 401 from the platform API. The session
// is invalidated before it is returned, so the next caller re-authenticates
// instead of hammering the backend with a dead token.
var ErrUnauthorized = errors.New("backend: unauthorized")

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

type Client struct {
	c   *Config
	cli *resty.Client
	ses *session.Session
}

func New(c *Config, ses *session.Session) *Client {
	cli := resty.New()
	cli.SetBaseURL(c.BaseURL)
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 10 * time.Second
	}
	cli.SetTimeout(c.HTTPTimeout)

	return &Client{
		c:   c,
		cli: cli,
		ses: ses,
	}
}

// Orders fetches the full order collection.
func (c *Client) Orders(ctx context.Context) ([]entity.Order, error) {
	var raw []dto.Order
	if err := c.get(ctx, "/orders", nil, &raw); err != nil {
		return nil, fmt.Errorf("can't fetch orders: %w", err)
	}
	return dto.NormalizeOrders(raw), nil
}

// Users fetches customer accounts. The backend filters by role server side.
func (c *Client) Users(ctx context.Context) ([]entity.User, error) {
	var raw []dto.User
	if err := c.get(ctx, "/users", map[string]string{"role": "user"}, &raw); err != nil {
		return nil, fmt.Errorf("can't fetch users: %w", err)
	}
	return dto.NormalizeUsers(raw), nil
}

// Products fetches the catalog used for line item fallback lookups.
func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	var raw []dto.Product
	if err := c.get(ctx, "/products", nil, &raw); err != nil {
		return nil, fmt.Errorf("can't fetch products: %w", err)
	}
	return dto.NormalizeProducts(raw), nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	token, err := c.ses.Token()
	if err != nil {
		return err
	}

	req := c.cli.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		c.ses.Invalidate()
		return ErrUnauthorized
	}
	if resp.IsError() {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode(), path)
	}
	return nil
}
