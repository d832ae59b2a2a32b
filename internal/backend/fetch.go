package backend

import (
	"context"

	"github.com/aurelia-jewels/reports-manager/internal/dto"
	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"golang.org/x/sync/errgroup"
)

// FetchAll issues the three collection fetches in parallel and awaits them
// jointly. A failure in any one aborts the whole reporting cycle: there is
// never a partial report.
func (c *Client) FetchAll(ctx context.Context) (*dto.Collections, error) {
	var (
		orders   []entity.Order
		users    []entity.User
		products []entity.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = c.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = c.Users(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = c.Products(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.Collections{
		Orders:   orders,
		Users:    users,
		Products: products,
	}, nil
}
