// internal/app/features/notifications/panel.go
package notifications

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/app/system/workers"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// recentLimit caps how many notifications the panel shows. The poller keeps
// the same number in its snapshot.
const recentLimit = 10

type panelResponse struct {
	Unread    int                   `json:"unread"`
	Items     []models.Notification `json:"items"`
	FetchedAt time.Time             `json:"fetchedAt"`
}

// ServePanel returns the unread badge count plus the newest notifications.
// The running poller's snapshot answers without a platform round trip; until
// its first successful poll the panel fetches directly.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	if h.Poller != nil {
		if snap, ok := h.Poller.Snapshot(); ok {
			shared.WriteJSON(w, http.StatusOK, panelFromSnapshot(snap))
			return
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "notification panel")
	defer cancel()

	sum, err := h.Notifs.Summary(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "notification summary failed", err, "Unable to load notifications.")
		return
	}
	items, _, err := h.Notifs.Recent(ctx, recentLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "recent notifications failed", err, "Unable to load notifications.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, panelResponse{
		Unread:    sum.Unread,
		Items:     items,
		FetchedAt: time.Now().UTC(),
	})
}

func panelFromSnapshot(snap workers.NotificationSnapshot) panelResponse {
	return panelResponse{
		Unread:    snap.Unread,
		Items:     snap.Items,
		FetchedAt: snap.FetchedAt,
	}
}

// HandleMarkRead marks one notification as read and nudges the poller.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Notification not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "mark notification read")
	defer cancel()

	if err := h.Notifs.MarkRead(ctx, id); err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Notification not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "mark notification read failed", err, "Unable to update notification.")
		return
	}

	h.refreshPoller(r)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkAllRead marks every notification as read and nudges the poller.
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "mark all notifications read")
	defer cancel()

	if err := h.Notifs.MarkAllRead(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "mark all notifications read failed", err, "Unable to update notifications.")
		return
	}

	h.refreshPoller(r)
	w.WriteHeader(http.StatusNoContent)
}

// refreshPoller updates the snapshot after a mutation so the badge reflects
// the mark immediately. Best effort: the mutation already succeeded, and the
// next tick repairs a missed refresh.
func (h *Handler) refreshPoller(r *http.Request) {
	if h.Poller == nil {
		return
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "notification refresh")
	defer cancel()
	if err := h.Poller.Refresh(ctx); err != nil {
		h.Log.Warn("notification refresh after mark failed", zap.Error(err))
	}
}
