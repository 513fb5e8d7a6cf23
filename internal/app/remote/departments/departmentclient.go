// internal/app/remote/departments/departmentclient.go
package departmentclient

import (
	"context"
	"errors"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

const resource = "departments"

// Client provides typed access to the platform's department records.
type Client struct {
	api *remote.Client
}

var ErrDuplicateName = errors.New("a department with this name already exists")

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// List returns one page of departments matching q plus the collection total.
func (c *Client) List(ctx context.Context, q remote.ListQuery) ([]models.Department, int, error) {
	page, err := remote.List[models.Department](ctx, c.api, resource, q)
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Department, error) {
	return remote.Get[models.Department](ctx, c.api, resource, id)
}

// CreateInput is the payload for a new department.
type CreateInput struct {
	Name        string `json:"name" validate:"required,max=120" label:"Name"`
	Description string `json:"description,omitempty" validate:"max=500" label:"Description"`
}

func (c *Client) Create(ctx context.Context, in CreateInput) (models.Department, error) {
	dep, err := remote.Create[models.Department](ctx, c.api, resource, in)
	if err != nil {
		return models.Department{}, mapDuplicate(err)
	}
	return dep, nil
}

// UpdateInput carries the mutable department fields. Nil fields keep their
// stored values.
type UpdateInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (c *Client) Update(ctx context.Context, id string, in UpdateInput) (models.Department, error) {
	dep, err := remote.Update[models.Department](ctx, c.api, resource, id, in)
	if err != nil {
		return models.Department{}, mapDuplicate(err)
	}
	return dep, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return remote.Del(ctx, c.api, resource, id)
}

// Options returns the full department catalog for filter dropdowns.
func (c *Client) Options(ctx context.Context) ([]models.Option, error) {
	return remote.Options(ctx, c.api, resource, nil)
}

func mapDuplicate(err error) error {
	if apiErr, ok := remote.AsAPIError(err); ok && apiErr.Code == "duplicate" {
		return ErrDuplicateName
	}
	return err
}
