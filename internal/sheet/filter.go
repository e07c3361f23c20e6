// Package sheet holds the spreadsheet logic shared by the walkthrough,
// checklist, and FF&E views: hierarchical filtering, sibling reordering,
// and cross-sheet item transfer. All three operate on the same
// Room→Category→Subcategory→Item tree and are parameterized by sheet
// type rather than forked per view.
package sheet

import (
	"strings"

	"github.com/atelierworks/maquette/internal/types"
)

// Criteria is the set of filter predicates applied to a project tree.
// Empty fields impose no constraint; set fields combine conjunctively.
type Criteria struct {
	SearchTerm   string
	RoomID       string
	CategoryName string
	Vendor       string
	Status       string
	Carrier      string
}

// Empty reports whether no predicate is set.
func (c Criteria) Empty() bool {
	return c.SearchTerm == "" && c.RoomID == "" && c.CategoryName == "" &&
		c.Vendor == "" && c.Status == "" && c.Carrier == ""
}

// Filter returns a filtered copy of the project tree. Room, category, and
// subcategory shells are always preserved so headers stay visible; only
// their children are pruned. The input tree is never mutated. With empty
// criteria the input is returned as-is to avoid needless allocation.
func Filter(p types.Project, c Criteria) types.Project {
	if c.Empty() {
		return p
	}

	rooms := make([]types.Room, len(p.Rooms))
	for i, room := range p.Rooms {
		rooms[i] = filterRoom(room, c)
	}
	p.Rooms = rooms
	return p
}

func filterRoom(room types.Room, c Criteria) types.Room {
	if c.RoomID != "" && room.ID != c.RoomID {
		room.Categories = []types.Category{}
		return room
	}

	categories := make([]types.Category, len(room.Categories))
	for i, cat := range room.Categories {
		categories[i] = filterCategory(cat, c)
	}
	room.Categories = categories
	return room
}

func filterCategory(cat types.Category, c Criteria) types.Category {
	if c.CategoryName != "" && !strings.EqualFold(cat.Name, c.CategoryName) {
		cat.Subcategories = []types.Subcategory{}
		return cat
	}

	subcategories := make([]types.Subcategory, len(cat.Subcategories))
	for i, sub := range cat.Subcategories {
		subcategories[i] = filterSubcategory(sub, c)
	}
	cat.Subcategories = subcategories
	return cat
}

func filterSubcategory(sub types.Subcategory, c Criteria) types.Subcategory {
	items := make([]types.Item, 0, len(sub.Items))
	for _, item := range sub.Items {
		if itemMatches(item, c) {
			items = append(items, item)
		}
	}
	sub.Items = items
	return sub
}

// itemMatches applies every set predicate; an item survives only if all
// of them pass.
func itemMatches(item types.Item, c Criteria) bool {
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Vendor), term) &&
			!strings.Contains(strings.ToLower(item.SKU), term) &&
			!strings.Contains(strings.ToLower(item.Remarks), term) {
			return false
		}
	}
	if c.Vendor != "" && item.Vendor != c.Vendor {
		return false
	}
	if c.Status != "" && item.Status != c.Status {
		return false
	}
	if c.Carrier != "" && item.Carrier != c.Carrier {
		return false
	}
	return true
}
