// internal/app/remote/staff/staffclient.go
package staffclient

import (
	"context"
	"errors"
	"net/url"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

const resource = "staff"

// Client provides typed access to the platform's staff records.
type Client struct {
	api *remote.Client
}

var ErrDuplicateEmail = errors.New("a staff member with this email already exists")

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// List returns one page of staff matching q plus the collection total.
// Supported filters: departmentId, status.
func (c *Client) List(ctx context.Context, q remote.ListQuery) ([]models.Staff, int, error) {
	page, err := remote.List[models.Staff](ctx, c.api, resource, q)
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Staff, error) {
	return remote.Get[models.Staff](ctx, c.api, resource, id)
}

// CreateInput is the payload for a new staff account.
type CreateInput struct {
	FullName     string `json:"fullName" validate:"required,max=120" label:"Full name"`
	Email        string `json:"email" validate:"required,email" label:"Email"`
	DepartmentID string `json:"departmentId" validate:"required,entityid" label:"Department"`
	Designation  string `json:"designation,omitempty" validate:"max=80" label:"Designation"`
}

func (c *Client) Create(ctx context.Context, in CreateInput) (models.Staff, error) {
	st, err := remote.Create[models.Staff](ctx, c.api, resource, in)
	if err != nil {
		return models.Staff{}, mapDuplicate(err)
	}
	return st, nil
}

// UpdateInput carries the mutable staff fields. Nil fields keep their
// stored values.
type UpdateInput struct {
	FullName     *string `json:"fullName,omitempty"`
	Email        *string `json:"email,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (c *Client) Update(ctx context.Context, id string, in UpdateInput) (models.Staff, error) {
	st, err := remote.Update[models.Staff](ctx, c.api, resource, id, in)
	if err != nil {
		return models.Staff{}, mapDuplicate(err)
	}
	return st, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return remote.Del(ctx, c.api, resource, id)
}

// Options returns the staff catalog for filter dropdowns, narrowed to a
// department when departmentID is non-empty.
func (c *Client) Options(ctx context.Context, departmentID string) ([]models.Option, error) {
	var filter url.Values
	if departmentID != "" {
		filter = url.Values{"departmentId": []string{departmentID}}
	}
	return remote.Options(ctx, c.api, resource, filter)
}

func mapDuplicate(err error) error {
	if apiErr, ok := remote.AsAPIError(err); ok && apiErr.Code == "duplicate" {
		return ErrDuplicateEmail
	}
	return err
}
