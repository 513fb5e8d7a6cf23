// internal/app/remote/subjects/subjectclient.go
package subjectclient

import (
	"context"
	"errors"
	"net/url"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

const resource = "subjects"

// Client provides typed access to the platform's subject records.
type Client struct {
	api *remote.Client
}

var ErrDuplicateCode = errors.New("a subject with this code already exists")

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// List returns one page of subjects matching q plus the collection total.
// Supported filters: departmentId, staffId.
func (c *Client) List(ctx context.Context, q remote.ListQuery) ([]models.Subject, int, error) {
	page, err := remote.List[models.Subject](ctx, c.api, resource, q)
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Subject, error) {
	return remote.Get[models.Subject](ctx, c.api, resource, id)
}

// CreateInput is the payload for a new subject.
type CreateInput struct {
	Name         string `json:"name" validate:"required,max=120" label:"Name"`
	Code         string `json:"code,omitempty" validate:"max=24" label:"Code"`
	DepartmentID string `json:"departmentId" validate:"required,entityid" label:"Department"`
	StaffID      string `json:"staffId,omitempty" validate:"omitempty,entityid" label:"Staff"`
}

func (c *Client) Create(ctx context.Context, in CreateInput) (models.Subject, error) {
	sub, err := remote.Create[models.Subject](ctx, c.api, resource, in)
	if err != nil {
		return models.Subject{}, mapDuplicate(err)
	}
	return sub, nil
}

// UpdateInput carries the mutable subject fields. Nil fields keep their
// stored values.
type UpdateInput struct {
	Name         *string `json:"name,omitempty"`
	Code         *string `json:"code,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	StaffID      *string `json:"staffId,omitempty"`
}

func (c *Client) Update(ctx context.Context, id string, in UpdateInput) (models.Subject, error) {
	sub, err := remote.Update[models.Subject](ctx, c.api, resource, id, in)
	if err != nil {
		return models.Subject{}, mapDuplicate(err)
	}
	return sub, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return remote.Del(ctx, c.api, resource, id)
}

// Options returns the subject catalog for filter dropdowns, narrowed to a
// department when departmentID is non-empty.
func (c *Client) Options(ctx context.Context, departmentID string) ([]models.Option, error) {
	var filter url.Values
	if departmentID != "" {
		filter = url.Values{"departmentId": []string{departmentID}}
	}
	return remote.Options(ctx, c.api, resource, filter)
}

// OptionsByStaff returns the catalog of subjects taught by one staff member.
// The staff dashboard merges its response series against this catalog.
func (c *Client) OptionsByStaff(ctx context.Context, staffID string) ([]models.Option, error) {
	return remote.Options(ctx, c.api, resource, url.Values{"staffId": []string{staffID}})
}

func mapDuplicate(err error) error {
	if apiErr, ok := remote.AsAPIError(err); ok && apiErr.Code == "duplicate" {
		return ErrDuplicateCode
	}
	return err
}
