// internal/app/features/announcements/types.go
package announcements

import (
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

type listResponse struct {
	Items    []models.Announcement `json:"items"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
}

type mutationResponse struct {
	Announcement models.Announcement `json:"announcement"`
	Directive    shared.Directive    `json:"directive"`
}

type deleteResponse struct {
	ID        string           `json:"id"`
	Directive shared.Directive `json:"directive"`
}
