// internal/domain/models/option.go
package models

// Option is the minimal id/name pair the platform returns for filter
// dropdowns. Every cascading filter field holds a slice of these.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AggregateRow is one bucket of a platform aggregate: the counted entity
// plus how many feedback responses landed on it. Entities with no responses
// are absent from the slice, not present with a zero.
type AggregateRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ResponseCount int    `json:"responseCount"`
}
