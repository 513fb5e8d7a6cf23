// internal/app/remote/students/studentclient.go
package studentclient

import (
	"context"
	"errors"
	"net/url"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

const resource = "students"

// Client provides typed access to the platform's student records.
type Client struct {
	api *remote.Client
}

var ErrDuplicateEmail = errors.New("a student with this email already exists")

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// List returns one page of students matching q plus the collection total.
// Supported filters: departmentId, status, year.
func (c *Client) List(ctx context.Context, q remote.ListQuery) ([]models.Student, int, error) {
	page, err := remote.List[models.Student](ctx, c.api, resource, q)
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Student, error) {
	return remote.Get[models.Student](ctx, c.api, resource, id)
}

// CreateInput is the payload for a new student account.
type CreateInput struct {
	FullName     string `json:"fullName" validate:"required,max=120" label:"Full name"`
	Email        string `json:"email" validate:"required,email" label:"Email"`
	RollNumber   string `json:"rollNumber,omitempty" validate:"max=32" label:"Roll number"`
	DepartmentID string `json:"departmentId" validate:"required,entityid" label:"Department"`
	Year         int    `json:"year,omitempty" validate:"omitempty,gte=1,lte=8" label:"Year"`
}

func (c *Client) Create(ctx context.Context, in CreateInput) (models.Student, error) {
	st, err := remote.Create[models.Student](ctx, c.api, resource, in)
	if err != nil {
		return models.Student{}, mapDuplicate(err)
	}
	return st, nil
}

// UpdateInput carries the mutable student fields. Nil fields keep their
// stored values.
type UpdateInput struct {
	FullName     *string `json:"fullName,omitempty"`
	Email        *string `json:"email,omitempty"`
	RollNumber   *string `json:"rollNumber,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (c *Client) Update(ctx context.Context, id string, in UpdateInput) (models.Student, error) {
	st, err := remote.Update[models.Student](ctx, c.api, resource, id, in)
	if err != nil {
		return models.Student{}, mapDuplicate(err)
	}
	return st, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return remote.Del(ctx, c.api, resource, id)
}

// Options returns the student catalog for filter dropdowns, narrowed to a
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
