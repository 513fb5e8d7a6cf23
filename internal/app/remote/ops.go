// internal/app/remote/ops.go
package remote

import (
	"context"
	"net/url"

	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// The generic operations below cover the platform's uniform resource
// surface. Per-resource clients wrap them with typed inputs so call sites
// never spell out paths or envelopes.

// List GETs /<resource> and returns the normalized page envelope.
// On error the returned page is empty but safe to range over.
func List[T any](ctx context.Context, c *Client, resource string, q ListQuery) (Page[T], error) {
	var page Page[T]
	if err := c.Get(ctx, "/"+resource, q.Values(), &page); err != nil {
		return Page[T]{Items: []T{}}, err
	}
	page.Normalize()
	return page, nil
}

// Get GETs /<resource>/{id}.
func Get[T any](ctx context.Context, c *Client, resource, id string) (T, error) {
	var out T
	if err := c.Get(ctx, "/"+resource+"/"+url.PathEscape(id), nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Create POSTs /<resource> and returns the stored record.
func Create[T any](ctx context.Context, c *Client, resource string, input any) (T, error) {
	var out T
	if err := c.Post(ctx, "/"+resource, input, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Update PUTs /<resource>/{id} and returns the stored record.
func Update[T any](ctx context.Context, c *Client, resource, id string, input any) (T, error) {
	var out T
	if err := c.Put(ctx, "/"+resource+"/"+url.PathEscape(id), input, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Del DELETEs /<resource>/{id}.
func Del(ctx context.Context, c *Client, resource, id string) error {
	return c.Delete(ctx, "/"+resource+"/"+url.PathEscape(id))
}

// Options GETs /<resource>/options, the id/name catalog for filter
// dropdowns. filter narrows the catalog (e.g. departmentId for subjects);
// a nil slice comes back as empty.
func Options(ctx context.Context, c *Client, resource string, filter url.Values) ([]models.Option, error) {
	var opts []models.Option
	if err := c.Get(ctx, "/"+resource+"/options", filter, &opts); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = []models.Option{}
	}
	return opts, nil
}
