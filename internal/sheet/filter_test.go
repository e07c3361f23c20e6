package sheet

import (
	"testing"

	"github.com/atelierworks/maquette/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() types.Project {
	return types.Project{
		ID:   "proj1",
		Name: "Hillcrest Residence",
		Rooms: []types.Room{
			{
				ID: "room1", Name: "Living Room", SheetType: types.SheetChecklist,
				Categories: []types.Category{
					{
						ID: "cat1", Name: "Lighting", Color: "#FFD700",
						Subcategories: []types.Subcategory{
							{
								ID: "sub1", Name: "Floor Lamps",
								Items: []types.Item{
									{ID: "item1", Name: "Arc Lamp", Vendor: "West Elm", SKU: "WE-100", Status: "PICKED", Carrier: "FedEx"},
									{ID: "item2", Name: "Tripod Lamp", Vendor: "CB2", SKU: "CB-200", Status: "SOURCING", Carrier: "UPS"},
								},
							},
						},
					},
					{
						ID: "cat2", Name: "Furniture",
						Subcategories: []types.Subcategory{
							{
								ID: "sub2", Name: "Sofas",
								Items: []types.Item{
									{ID: "item3", Name: "Sectional", Vendor: "West Elm", SKU: "WE-300", Status: "PICKED", Remarks: "fabric swatch pending"},
								},
							},
						},
					},
				},
			},
			{
				ID: "room2", Name: "Bedroom", SheetType: types.SheetChecklist,
				Categories: []types.Category{
					{
						ID: "cat3", Name: "Lighting",
						Subcategories: []types.Subcategory{
							{
								ID: "sub3", Name: "Sconces",
								Items: []types.Item{
									{ID: "item4", Name: "Brass Sconce", Vendor: "Rejuvenation", SKU: "RJ-400", Status: "TO SOURCE"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func collectItemIDs(p types.Project) []string {
	var ids []string
	for _, room := range p.Rooms {
		for _, cat := range room.Categories {
			for _, sub := range cat.Subcategories {
				for _, item := range sub.Items {
					ids = append(ids, item.ID)
				}
			}
		}
	}
	return ids
}

func TestFilter_EmptyCriteriaPassThrough(t *testing.T) {
	tree := sampleTree()

	got := Filter(tree, Criteria{})

	assert.Equal(t, tree, got, "empty criteria must return a structurally equal tree")
}

func TestFilter_StatusPredicate(t *testing.T) {
	got := Filter(sampleTree(), Criteria{Status: "PICKED"})

	for _, room := range got.Rooms {
		for _, cat := range room.Categories {
			for _, sub := range cat.Subcategories {
				for _, item := range sub.Items {
					assert.Equal(t, "PICKED", item.Status)
				}
			}
		}
	}
	assert.ElementsMatch(t, []string{"item1", "item3"}, collectItemIDs(got))
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	lower := Filter(sampleTree(), Criteria{SearchTerm: "lamp"})
	upper := Filter(sampleTree(), Criteria{SearchTerm: "LAMP"})

	assert.Equal(t, collectItemIDs(lower), collectItemIDs(upper))
	assert.ElementsMatch(t, []string{"item1", "item2"}, collectItemIDs(lower))
}

func TestFilter_SearchMatchesRemarks(t *testing.T) {
	got := Filter(sampleTree(), Criteria{SearchTerm: "swatch"})

	assert.Equal(t, []string{"item3"}, collectItemIDs(got))
}

func TestFilter_ShellsArePreserved(t *testing.T) {
	tree := sampleTree()

	// A criteria set that matches nothing at all.
	got := Filter(tree, Criteria{SearchTerm: "no-such-item"})

	require.Len(t, got.Rooms, len(tree.Rooms), "room count must be unchanged")
	for i, room := range got.Rooms {
		require.Len(t, room.Categories, len(tree.Rooms[i].Categories))
		for j, cat := range room.Categories {
			require.Len(t, cat.Subcategories, len(tree.Rooms[i].Categories[j].Subcategories))
			for _, sub := range cat.Subcategories {
				assert.Empty(t, sub.Items)
			}
		}
	}
}

func TestFilter_RoomMismatchEmptiesCategories(t *testing.T) {
	got := Filter(sampleTree(), Criteria{RoomID: "room1"})

	require.Len(t, got.Rooms, 2)
	assert.NotEmpty(t, got.Rooms[0].Categories)
	assert.Empty(t, got.Rooms[1].Categories, "non-matching room keeps its shell but loses content")
}

func TestFilter_CategoryNameMatchIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleTree(), Criteria{CategoryName: "lighting"})

	assert.ElementsMatch(t, []string{"item1", "item2", "item4"}, collectItemIDs(got))
	// The Furniture category survives as an empty shell.
	require.Len(t, got.Rooms[0].Categories, 2)
	assert.Empty(t, got.Rooms[0].Categories[1].Subcategories)
}

func TestFilter_ConjunctiveCombination(t *testing.T) {
	byBoth := collectItemIDs(Filter(sampleTree(), Criteria{Status: "PICKED", Vendor: "West Elm"}))
	byStatus := collectItemIDs(Filter(sampleTree(), Criteria{Status: "PICKED"}))
	byVendor := collectItemIDs(Filter(sampleTree(), Criteria{Vendor: "West Elm"}))

	statusSet := make(map[string]bool)
	for _, id := range byStatus {
		statusSet[id] = true
	}
	vendorSet := make(map[string]bool)
	for _, id := range byVendor {
		vendorSet[id] = true
	}
	for _, id := range byBoth {
		assert.True(t, statusSet[id], "conjunctive result must be a subset of the status-only result")
		assert.True(t, vendorSet[id], "conjunctive result must be a subset of the vendor-only result")
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	tree := sampleTree()
	want := sampleTree()

	Filter(tree, Criteria{Status: "PICKED", SearchTerm: "lamp", RoomID: "room1"})

	assert.Equal(t, want, tree, "input tree must be untouched")
}
