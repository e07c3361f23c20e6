// Package catalog holds the built-in room and category templates used by
// auto-populate and the comprehensive category endpoint. The data is
// static; projects copy from it, never reference it.
package catalog

import "strings"

// Template describes one standard category: its display color and the
// subcategories it is seeded with.
type Template struct {
	Name          string
	Color         string
	Subcategories []string
}

// templates is ordered the way categories should appear in a fresh room.
var templates = []Template{
	{
		Name:  "Lighting",
		Color: "#FFD700",
		Subcategories: []string{
			"Ceiling Fixtures", "Floor Lamps", "Table Lamps", "Sconces",
		},
	},
	{
		Name:  "Furniture",
		Color: "#8D6E63",
		Subcategories: []string{
			"Seating", "Tables", "Storage", "Beds",
		},
	},
	{
		Name:  "Textiles",
		Color: "#BA68C8",
		Subcategories: []string{
			"Rugs", "Window Treatments", "Pillows & Throws", "Bedding",
		},
	},
	{
		Name:  "Wall Decor",
		Color: "#4FC3F7",
		Subcategories: []string{
			"Art", "Mirrors", "Wallpaper",
		},
	},
	{
		Name:  "Accessories",
		Color: "#81C784",
		Subcategories: []string{
			"Decorative Objects", "Plants & Planters", "Books & Trays",
		},
	},
	{
		Name:  "Paint & Finishes",
		Color: "#FF8A65",
		Subcategories: []string{
			"Wall Paint", "Trim", "Hardware",
		},
	},
}

// Available returns the names of every template category.
func Available() []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// Lookup finds a template by name, case-insensitively.
func Lookup(name string) (Template, bool) {
	for _, t := range templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Template{}, false
}

// All returns every template in display order.
func All() []Template {
	return templates
}
