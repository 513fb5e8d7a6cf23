// internal/app/remote/announcements/announcementclient.go
package announcementclient

import (
	"context"
	"net/url"
	"time"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

const resource = "announcements"

// Client provides typed access to the platform's announcement records.
type Client struct {
	api *remote.Client
}

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// List returns one page of announcements matching q plus the collection
// total. Supported filter: audience.
func (c *Client) List(ctx context.Context, q remote.ListQuery) ([]models.Announcement, int, error) {
	page, err := remote.List[models.Announcement](ctx, c.api, resource, q)
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Announcement, error) {
	return remote.Get[models.Announcement](ctx, c.api, resource, id)
}

// CreateInput is the payload for a new announcement. Body is sanitized by
// the handler before it reaches this client.
type CreateInput struct {
	Title    string     `json:"title" validate:"required,max=200" label:"Title"`
	Body     string     `json:"body,omitempty" validate:"max=20000" label:"Body"`
	Audience string     `json:"audience" validate:"required,audience" label:"Audience"`
	Active   bool       `json:"active"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

func (c *Client) Create(ctx context.Context, in CreateInput) (models.Announcement, error) {
	return remote.Create[models.Announcement](ctx, c.api, resource, in)
}

// UpdateInput carries the mutable announcement fields. Nil fields keep
// their stored values.
type UpdateInput struct {
	Title    *string    `json:"title,omitempty"`
	Body     *string    `json:"body,omitempty"`
	Audience *string    `json:"audience,omitempty"`
	Active   *bool      `json:"active,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

func (c *Client) Update(ctx context.Context, id string, in UpdateInput) (models.Announcement, error) {
	return remote.Update[models.Announcement](ctx, c.api, resource, id, in)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return remote.Del(ctx, c.api, resource, id)
}

// Active returns the announcements currently visible to an audience.
// Role dashboards embed these.
func (c *Client) Active(ctx context.Context, audience string) ([]models.Announcement, error) {
	filter := url.Values{"active": []string{"true"}}
	if audience != "" {
		filter.Set("audience", audience)
	}
	var anns []models.Announcement
	if err := c.api.Get(ctx, "/"+resource+"/active", filter, &anns); err != nil {
		return nil, err
	}
	if anns == nil {
		anns = []models.Announcement{}
	}
	return anns, nil
}
