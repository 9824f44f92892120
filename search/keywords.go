package search

import (
	"strings"

	"otto/catalog"
)

// keywordEntry binds a query substring to a template. The table is a slice,
// not a map: lookup order is table order and the first match wins.
type keywordEntry struct {
	Keyword  string
	Template catalog.TemplateKey
}

var keywordTable = []keywordEntry{
	// Living room related
	{"living", catalog.LivingRoom},
	{"sala", catalog.LivingRoom},
	{"sofá", catalog.LivingRoom},
	{"sofa", catalog.LivingRoom},
	{"room", catalog.LivingRoom},
	{"habitación", catalog.LivingRoom},
	{"decorar", catalog.LivingRoom},
	{"japandi", catalog.LivingRoom},
	{"minimalista", catalog.LivingRoom},

	// Casual outfit related
	{"casual", catalog.CasualOutfit},
	{"weekend", catalog.CasualOutfit},
	{"fin de semana", catalog.CasualOutfit},
	{"outfit", catalog.CasualOutfit},
	{"look", catalog.CasualOutfit},
	{"ropa", catalog.CasualOutfit},
	{"vestir", catalog.CasualOutfit},

	// Office style related
	{"office", catalog.OfficeStyle},
	{"oficina", catalog.OfficeStyle},
	{"trabajo", catalog.OfficeStyle},
	{"formal", catalog.OfficeStyle},
	{"profesional", catalog.OfficeStyle},
	{"reunión", catalog.OfficeStyle},
	{"meeting", catalog.OfficeStyle},

	// Home improvement related
	{"diy", catalog.HomeImprovement},
	{"arreglar", catalog.HomeImprovement},
	{"reparar", catalog.HomeImprovement},
	{"pintar", catalog.HomeImprovement},
	{"herramienta", catalog.HomeImprovement},
	{"tool", catalog.HomeImprovement},
	{"mejora", catalog.HomeImprovement},
	{"proyecto", catalog.HomeImprovement},
}

type styleEntry struct {
	Style    string
	Keywords []string
}

var styleTable = []styleEntry{
	{"Japandi", []string{"japandi", "japonés", "minimalista", "zen", "natural", "madera"}},
	{"Modern", []string{"moderno", "contemporáneo", "actual", "trendy"}},
	{"Classic", []string{"clásico", "tradicional", "elegante", "atemporal"}},
	{"Industrial", []string{"industrial", "loft", "metal", "urbano"}},
	{"Bohemian", []string{"boho", "bohemio", "ecléctico", "colorido"}},
}

// DefaultStyle is returned when no style keyword matches.
const DefaultStyle = "Japandi"

// MatchTemplate maps free text to a template key by case-insensitive
// substring match. Unrecognized queries (and image-only submissions) fall
// back to the living room template.
func MatchTemplate(query string) catalog.TemplateKey {
	lower := strings.ToLower(query)
	for _, e := range keywordTable {
		if strings.Contains(lower, e.Keyword) {
			return e.Template
		}
	}
	return catalog.DefaultTemplate
}

// DetectStyle scans the style table and returns the first matching label.
func DetectStyle(query string) string {
	lower := strings.ToLower(query)
	for _, e := range styleTable {
		for _, kw := range e.Keywords {
			if strings.Contains(lower, kw) {
				return e.Style
			}
		}
	}
	return DefaultStyle
}
