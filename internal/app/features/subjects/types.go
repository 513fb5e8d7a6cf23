// internal/app/features/subjects/types.go
package subjects

import (
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

type listResponse struct {
	Items    []models.Subject `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

type mutationResponse struct {
	Subject   models.Subject   `json:"subject"`
	Directive shared.Directive `json:"directive"`
}

type deleteResponse struct {
	ID        string           `json:"id"`
	Directive shared.Directive `json:"directive"`
}
