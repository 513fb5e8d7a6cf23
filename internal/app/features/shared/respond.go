// internal/app/features/shared/respond.go
package shared

import (
	"encoding/json"
	"net/http"
)

// WriteJSON sends v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
