// internal/app/remote/notifications/notificationclient.go
package notificationclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

const resource = "notifications"

// Client provides typed access to the platform's notification endpoints.
// The background poller is its main consumer.
type Client struct {
	api *remote.Client
}

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// Summary is the unread-count envelope.
type Summary struct {
	Unread int `json:"unread"`
}

// Summary returns the unread notification count.
func (c *Client) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	if err := c.api.Get(ctx, "/"+resource+"/summary", nil, &s); err != nil {
		return Summary{}, err
	}
	if s.Unread < 0 {
		s.Unread = 0
	}
	return s, nil
}

// Recent returns the newest notifications, capped at limit.
func (c *Client) Recent(ctx context.Context, limit int) ([]models.Notification, int, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var page remote.Page[models.Notification]
	if err := c.api.Get(ctx, "/"+resource, v, &page); err != nil {
		return nil, 0, err
	}
	page.Normalize()
	return page.Items, page.Total, nil
}

// MarkRead marks one notification as read.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	return c.api.Post(ctx, "/"+resource+"/"+url.PathEscape(id)+"/read", nil, nil)
}

// MarkAllRead marks every notification as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.api.Post(ctx, "/"+resource+"/read-all", nil, nil)
}
