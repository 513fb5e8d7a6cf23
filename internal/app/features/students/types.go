// internal/app/features/students/types.go
package students

import (
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

type listResponse struct {
	Items    []models.Student `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

type mutationResponse struct {
	Student   models.Student   `json:"student"`
	Directive shared.Directive `json:"directive"`
}

type deleteResponse struct {
	ID        string           `json:"id"`
	Directive shared.Directive `json:"directive"`
}
