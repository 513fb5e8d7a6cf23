package clientconfig_test

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/features/clientconfig"
	"github.com/dalemusser/pulsehub/internal/testutil"
)

func TestServeConfig(t *testing.T) {
	h := clientconfig.NewHandler(25, 300*time.Millisecond, 30*time.Second, zap.NewNop())

	req := testutil.NewRequest("GET", "/client-config")
	rec := testutil.NewRecorder()

	h.ServeConfig(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		PageSize             int   `json:"pageSize"`
		PageSizes            []int `json:"pageSizes"`
		SearchDebounceMs     int64 `json:"searchDebounceMs"`
		NotifyPollIntervalMs int64 `json:"notifyPollIntervalMs"`
	}
	rec.DecodeJSON(t, &got)

	if got.PageSize != 25 {
		t.Errorf("pageSize: got %d, want 25", got.PageSize)
	}
	if len(got.PageSizes) == 0 {
		t.Error("expected the allowed page sizes")
	}
	if got.SearchDebounceMs != 300 {
		t.Errorf("searchDebounceMs: got %d, want 300", got.SearchDebounceMs)
	}
	if got.NotifyPollIntervalMs != 30000 {
		t.Errorf("notifyPollIntervalMs: got %d, want 30000", got.NotifyPollIntervalMs)
	}
}
