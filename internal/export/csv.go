// Package export flattens a project tree into spreadsheet downloads.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atelierworks/maquette/internal/types"
)

// csvHeader is the fixed column set, one row per item.
var csvHeader = []string{
	"Room", "Category", "Subcategory", "Item", "Vendor",
	"SKU", "Quantity", "Cost", "Status", "Carrier",
}

// CSV renders one row per item in tree order. Every field is surrounded
// by double quotes; embedded quotes are escaped by doubling them.
func CSV(p types.Project) string {
	var b strings.Builder
	writeRow(&b, csvHeader)

	for _, room := range p.Rooms {
		for _, cat := range room.Categories {
			for _, sub := range cat.Subcategories {
				for _, item := range sub.Items {
					writeRow(&b, []string{
						room.Name,
						cat.Name,
						sub.Name,
						item.Name,
						item.Vendor,
						item.SKU,
						strconv.Itoa(item.Quantity),
						formatCost(item.Cost),
						item.Status,
						item.Carrier,
					})
				}
			}
		}
	}

	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func formatCost(cost float64) string {
	return fmt.Sprintf("%.2f", cost)
}

// Filename derives a download filename from the project name and sheet.
func Filename(projectName string, sheet types.SheetType) string {
	name := strings.TrimSpace(projectName)
	if name == "" {
		name = "project"
	}
	name = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return fmt.Sprintf("%s-%s.csv", name, sheet)
}
