// internal/app/features/departments/types.go
package departments

import (
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// listResponse is one page of departments plus the paging echo the
// presenter mirrors into its filter state.
type listResponse struct {
	Items    []models.Department `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

// mutationResponse pairs the stored department with the reconciliation
// directive for the presenter's list.
type mutationResponse struct {
	Department models.Department `json:"department"`
	Directive  shared.Directive  `json:"directive"`
}

type deleteResponse struct {
	ID        string           `json:"id"`
	Directive shared.Directive `json:"directive"`
}
