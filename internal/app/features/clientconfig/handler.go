// internal/app/features/clientconfig/handler.go

// Package clientconfig serves the screen-engine parameters the admin client
// boots with: the paging defaults, the search debounce window, and the
// notification poll cadence. Serving them from the relay keeps client and
// relay agreeing on a single configuration source.
package clientconfig

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/system/paging"
)

type Handler struct {
	PageSize       int
	SearchDebounce time.Duration
	PollInterval   time.Duration
	Log            *zap.Logger
}

func NewHandler(pageSize int, searchDebounce, pollInterval time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		PageSize:       pageSize,
		SearchDebounce: searchDebounce,
		PollInterval:   pollInterval,
		Log:            logger,
	}
}

// Durations travel as milliseconds; the consumer is a browser client.
type configResponse struct {
	PageSize             int   `json:"pageSize"`
	PageSizes            []int `json:"pageSizes"`
	SearchDebounceMs     int64 `json:"searchDebounceMs"`
	NotifyPollIntervalMs int64 `json:"notifyPollIntervalMs"`
}

func (h *Handler) ServeConfig(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, configResponse{
		PageSize:             h.PageSize,
		PageSizes:            paging.PageSizes,
		SearchDebounceMs:     h.SearchDebounce.Milliseconds(),
		NotifyPollIntervalMs: h.PollInterval.Milliseconds(),
	})
}
