// internal/app/features/staff/types.go
package staff

import (
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

type listResponse struct {
	Items    []models.Staff `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

type mutationResponse struct {
	Staff     models.Staff     `json:"staff"`
	Directive shared.Directive `json:"directive"`
}

type deleteResponse struct {
	ID        string           `json:"id"`
	Directive shared.Directive `json:"directive"`
}
