// internal/app/system/seriesmerge/seriesmerge.go

// Package seriesmerge reconciles sparse aggregate feeds against the
// authoritative entity catalog for a scope.
//
// The platform computes response counts only for entities that have at
// least one feedback record, so a chart drawn straight from the feed would
// silently drop zero-activity subjects and staff. Merge zero-fills the feed
// against the catalog so every entity in scope gets a row, in catalog order.
package seriesmerge

import "github.com/dalemusser/pulsehub/internal/domain/models"

// All is the selector value meaning "no narrowing". The empty string is
// treated the same way so callers can pass a normalized filter through.
const All = "all"

// Row is one display-ready series entry. Labels are not guaranteed unique
// (two departments can each have a "Workshop" subject); ids are, so rows
// carry only what the presenter needs and duplicates pass through as-is.
type Row struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Merge produces one Row per catalog entity, in catalog order, taking each
// value from the aggregate feed and defaulting absent entities to zero.
//
// When selectedID names a single entity (anything other than "" or All),
// the result narrows to that entity's row, or to no rows when the id is not
// in the catalog.
//
// When the catalog is empty there is no authoritative ordering to fill
// against, so the feed is emitted as-is in received order.
func Merge(catalog []models.Option, aggregates []models.AggregateRow, selectedID string) []Row {
	if len(catalog) == 0 {
		return fromFeed(aggregates)
	}

	counts := make(map[string]int, len(aggregates)) // entity ID -> responses
	for _, a := range aggregates {
		if a.ResponseCount > 0 {
			counts[a.ID] = a.ResponseCount
		}
	}

	narrowed := narrowing(selectedID)
	rows := make([]Row, 0, len(catalog))
	for _, entity := range catalog {
		if narrowed && entity.ID != selectedID {
			continue
		}
		rows = append(rows, Row{Label: entity.Name, Value: counts[entity.ID]})
	}
	return rows
}

// Total sums the values of a merged series for stat cards and table footers.
func Total(rows []Row) int {
	sum := 0
	for _, r := range rows {
		sum += r.Value
	}
	return sum
}

func narrowing(selectedID string) bool {
	return selectedID != "" && selectedID != All
}

// fromFeed renders the feed directly. Counts below zero clamp to zero so a
// malformed feed row cannot push a negative bar into the presenter.
func fromFeed(aggregates []models.AggregateRow) []Row {
	rows := make([]Row, 0, len(aggregates))
	for _, a := range aggregates {
		v := a.ResponseCount
		if v < 0 {
			v = 0
		}
		rows = append(rows, Row{Label: a.Name, Value: v})
	}
	return rows
}
