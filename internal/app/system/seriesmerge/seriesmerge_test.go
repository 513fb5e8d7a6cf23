package seriesmerge

import (
	"testing"

	"github.com/dalemusser/pulsehub/internal/domain/models"
)

func opt(id, name string) models.Option {
	return models.Option{ID: id, Name: name}
}

func agg(id, name string, count int) models.AggregateRow {
	return models.AggregateRow{ID: id, Name: name, ResponseCount: count}
}

func assertRows(t *testing.T, got, want []Row) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Merge() returned %d rows, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMerge_ZeroFillsMissingEntities(t *testing.T) {
	catalog := []models.Option{
		opt("s1", "Algorithms"),
		opt("s2", "Databases"),
		opt("s3", "Networks"),
	}

	tests := []struct {
		name       string
		aggregates []models.AggregateRow
		want       []Row
	}{
		{
			"empty feed fills every entity with zero",
			nil,
			[]Row{{"Algorithms", 0}, {"Databases", 0}, {"Networks", 0}},
		},
		{
			"partial feed fills only the gaps",
			[]models.AggregateRow{agg("s2", "Databases", 7)},
			[]Row{{"Algorithms", 0}, {"Databases", 7}, {"Networks", 0}},
		},
		{
			"full feed passes through",
			[]models.AggregateRow{
				agg("s1", "Algorithms", 3),
				agg("s2", "Databases", 7),
				agg("s3", "Networks", 1),
			},
			[]Row{{"Algorithms", 3}, {"Databases", 7}, {"Networks", 1}},
		},
		{
			"feed ids outside the catalog are dropped",
			[]models.AggregateRow{
				agg("s2", "Databases", 7),
				agg("ghost", "Retired Subject", 99),
			},
			[]Row{{"Algorithms", 0}, {"Databases", 7}, {"Networks", 0}},
		},
		{
			"negative counts clamp to zero",
			[]models.AggregateRow{agg("s1", "Algorithms", -4)},
			[]Row{{"Algorithms", 0}, {"Databases", 0}, {"Networks", 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(catalog, tt.aggregates, All)
			if len(got) != len(catalog) {
				t.Errorf("Merge() returned %d rows, want one per catalog entity (%d)",
					len(got), len(catalog))
			}
			assertRows(t, got, tt.want)
		})
	}
}

func TestMerge_OrderFollowsCatalog(t *testing.T) {
	catalog := []models.Option{
		opt("s3", "Networks"),
		opt("s1", "Algorithms"),
		opt("s2", "Databases"),
	}
	// Feed arrives sorted by count, which must not leak into the result.
	aggregates := []models.AggregateRow{
		agg("s2", "Databases", 9),
		agg("s3", "Networks", 5),
		agg("s1", "Algorithms", 2),
	}

	got := Merge(catalog, aggregates, "")
	want := []Row{{"Networks", 5}, {"Algorithms", 2}, {"Databases", 9}}
	assertRows(t, got, want)
}

func TestMerge_SelectionNarrowing(t *testing.T) {
	catalog := []models.Option{
		opt("st1", "Dr. Rao"),
		opt("st2", "Prof. Lindgren"),
	}
	aggregates := []models.AggregateRow{agg("st2", "Prof. Lindgren", 4)}

	tests := []struct {
		name     string
		selected string
		want     []Row
	}{
		{"selected id with responses", "st2", []Row{{"Prof. Lindgren", 4}}},
		{"selected id without responses", "st1", []Row{{"Dr. Rao", 0}}},
		{"selected id absent from catalog", "st9", []Row{}},
		{"all sentinel keeps every row", All, []Row{{"Dr. Rao", 0}, {"Prof. Lindgren", 4}}},
		{"empty selection keeps every row", "", []Row{{"Dr. Rao", 0}, {"Prof. Lindgren", 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(catalog, aggregates, tt.selected)
			if len(got) > len(catalog) {
				t.Errorf("Merge() returned %d rows, want at most %d", len(got), len(catalog))
			}
			assertRows(t, got, tt.want)
		})
	}
}

func TestMerge_EmptyCatalogFallsBackToFeed(t *testing.T) {
	aggregates := []models.AggregateRow{
		agg("s2", "Databases", 9),
		agg("s1", "Algorithms", 2),
		agg("s4", "Compilers", -1),
	}

	got := Merge(nil, aggregates, All)

	// Received order, no zero-fill, negatives clamped.
	want := []Row{{"Databases", 9}, {"Algorithms", 2}, {"Compilers", 0}}
	assertRows(t, got, want)
}

func TestMerge_EmptyCatalogEmptyFeed(t *testing.T) {
	got := Merge(nil, nil, All)
	if got == nil {
		t.Fatal("Merge() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Merge() returned %d rows, want 0", len(got))
	}
}

func TestMerge_DuplicateLabelsSurvive(t *testing.T) {
	// Two departments can each offer a "Workshop" subject; ids differ,
	// labels collide, and both rows must still render.
	catalog := []models.Option{
		opt("s1", "Workshop"),
		opt("s2", "Workshop"),
	}
	aggregates := []models.AggregateRow{agg("s2", "Workshop", 3)}

	got := Merge(catalog, aggregates, All)
	want := []Row{{"Workshop", 0}, {"Workshop", 3}}
	assertRows(t, got, want)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want int
	}{
		{"empty", nil, 0},
		{"single", []Row{{"A", 5}}, 5},
		{"mixed", []Row{{"A", 5}, {"B", 0}, {"C", 12}}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(tt.rows); got != tt.want {
				t.Errorf("Total() = %d, want %d", got, tt.want)
			}
		})
	}
}
