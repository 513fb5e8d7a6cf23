// internal/app/remote/feedback/feedbackclient.go
package feedbackclient

import (
	"context"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

const resource = "feedback"

// Client provides typed read and moderation access to the platform's
// feedback records. Feedback is authored by students upstream; the admin
// surface only lists, inspects, and removes it.
type Client struct {
	api *remote.Client
}

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// List returns one page of feedback matching q plus the collection total.
// Supported filters: departmentId, subjectId, staffId, studentId, rating,
// from, to (RFC 3339 dates).
func (c *Client) List(ctx context.Context, q remote.ListQuery) ([]models.Feedback, int, error) {
	page, err := remote.List[models.Feedback](ctx, c.api, resource, q)
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Feedback, error) {
	return remote.Get[models.Feedback](ctx, c.api, resource, id)
}

// Delete removes a feedback record (moderation).
func (c *Client) Delete(ctx context.Context, id string) error {
	return remote.Del(ctx, c.api, resource, id)
}
