// internal/app/system/workers/notifypoller.go
package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	notificationclient "github.com/dalemusser/pulsehub/internal/app/remote/notifications"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// NotificationSnapshot is what the poller last saw: the unread count and the
// newest notifications, stamped with when they were fetched.
type NotificationSnapshot struct {
	Unread    int
	Items     []models.Notification
	FetchedAt time.Time
}

// NotificationPoller is a background worker that keeps the notification
// badge fresh without a fetch on every page view. A failed poll keeps the
// previous snapshot; consumers keep showing stale-but-present data.
type NotificationPoller struct {
	client      *notificationclient.Client
	log         *zap.Logger
	interval    time.Duration
	recentLimit int

	mu       sync.RWMutex
	snap     NotificationSnapshot
	ready    bool
	onChange func(NotificationSnapshot)

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewNotificationPoller creates a new notification poller.
//
// Parameters:
//   - client: the notifications client
//   - logger: zap logger for logging
//   - interval: how often to poll (e.g., 30 seconds)
//   - recentLimit: how many recent notifications to keep in the snapshot
func NewNotificationPoller(client *notificationclient.Client, logger *zap.Logger, interval time.Duration, recentLimit int) *NotificationPoller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if recentLimit <= 0 {
		recentLimit = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationPoller{
		client:      client,
		log:         logger,
		interval:    interval,
		recentLimit: recentLimit,
		stopCh:      make(chan struct{}),
	}
}

// OnChange registers a hook invoked after every successful poll or refresh.
// Register before Start.
func (w *NotificationPoller) OnChange(fn func(NotificationSnapshot)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls once immediately, then on every interval tick.
func (w *NotificationPoller) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("notification poller started",
		zap.Duration("interval", w.interval),
		zap.Int("recent_limit", w.recentLimit))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *NotificationPoller) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("notification poller stopped")
}

// Snapshot returns a copy of the latest snapshot. ok is false until the
// first poll has succeeded, so consumers can fall back to a direct fetch.
func (w *NotificationPoller) Snapshot() (NotificationSnapshot, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	items := make([]models.Notification, len(w.snap.Items))
	copy(items, w.snap.Items)
	snap := w.snap
	snap.Items = items
	return snap, w.ready
}

// Refresh forces a poll outside the ticker, e.g. right after the user marks
// notifications read, so the badge does not lag a full interval behind.
func (w *NotificationPoller) Refresh(ctx context.Context) error {
	snap, err := w.fetch(ctx)
	if err != nil {
		return err
	}
	w.store(snap)
	return nil
}

func (w *NotificationPoller) run() {
	defer w.wg.Done()

	w.poll()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

func (w *NotificationPoller) poll() {
	ctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Medium(), w.log, "notification poll")
	defer cancel()

	snap, err := w.fetch(ctx)
	if err != nil {
		w.log.Warn("notification poll failed", zap.Error(err))
		return
	}
	w.store(snap)
}

func (w *NotificationPoller) fetch(ctx context.Context) (NotificationSnapshot, error) {
	sum, err := w.client.Summary(ctx)
	if err != nil {
		return NotificationSnapshot{}, err
	}
	items, _, err := w.client.Recent(ctx, w.recentLimit)
	if err != nil {
		return NotificationSnapshot{}, err
	}
	return NotificationSnapshot{
		Unread:    sum.Unread,
		Items:     items,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (w *NotificationPoller) store(snap NotificationSnapshot) {
	w.mu.Lock()
	w.snap = snap
	w.ready = true
	fn := w.onChange
	w.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}
