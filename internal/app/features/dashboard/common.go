// internal/app/features/dashboard/common.go
package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/system/cascade"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// dependentField is the JSON view of one cascade-driven dropdown: its option
// list, its load state, and whichever option the request carried as selected.
type dependentField struct {
	Options  []models.Option `json:"options"`
	State    string          `json:"state"`
	Selected string          `json:"selected,omitempty"`
}

func fieldView(v cascade.FieldView) dependentField {
	return dependentField{
		Options:  v.Options,
		State:    v.State.String(),
		Selected: v.Selected,
	}
}

// unreadCount reads the notification badge from the poller snapshot when one
// is running, falling back to a direct summary fetch. The badge is furniture:
// on failure it reports zero rather than failing the dashboard.
func (h *Handler) unreadCount(ctx context.Context) int {
	if h.Poller != nil {
		if snap, ok := h.Poller.Snapshot(); ok {
			return snap.Unread
		}
	}
	if h.Notifs == nil {
		return 0
	}
	sum, err := h.Notifs.Summary(ctx)
	if err != nil {
		h.Log.Warn("unread badge fetch failed", zap.Error(err))
		return 0
	}
	return sum.Unread
}

// activeAnnouncements fetches the notices pinned to the top of a dashboard,
// scoped to the viewer's audience. Failures degrade to an empty board.
func (h *Handler) activeAnnouncements(ctx context.Context, audience string) []models.Announcement {
	anns, err := h.Anns.Active(ctx, audience)
	if err != nil {
		h.Log.Warn("active announcements fetch failed",
			zap.String("audience", audience),
			zap.Error(err))
		return []models.Announcement{}
	}
	if anns == nil {
		anns = []models.Announcement{}
	}
	return anns
}
