package catalog

import (
	"otto/models"
)

// TemplateKey selects a prebuilt solution template.
type TemplateKey string

const (
	LivingRoom      TemplateKey = "livingRoom"
	CasualOutfit    TemplateKey = "casualOutfit"
	OfficeStyle     TemplateKey = "officeStyle"
	HomeImprovement TemplateKey = "homeImprovement"
)

// DefaultTemplate is used for image uploads and unrecognized queries.
const DefaultTemplate = LivingRoom

// SolutionTemplate maps an ordered list of product ids to role labels.
// ProductIDs and Roles are parallel and must stay the same length.
type SolutionTemplate struct {
	Key         TemplateKey
	Title       string
	Description string
	ProductIDs  []string
	Roles       []string
}

// ProductByID resolves a catalog product. The catalog and the templates are
// kept consistent by construction; a template referencing a missing id is a
// programming error.
func ProductByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AllProducts returns a copy of the full catalog.
func AllProducts() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// TemplateFor looks up a solution template by key.
func TemplateFor(key TemplateKey) (SolutionTemplate, bool) {
	t, ok := templates[key]
	return t, ok
}

// TemplateKeys returns every defined template key.
func TemplateKeys() []TemplateKey {
	keys := make([]TemplateKey, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	return keys
}

// StoresFor returns the distinct store names touched by a template, in
// first-seen product order.
func StoresFor(t SolutionTemplate) []string {
	seen := make(map[string]bool, len(t.ProductIDs))
	var stores []string
	for _, id := range t.ProductIDs {
		p, ok := ProductByID(id)
		if !ok {
			continue
		}
		if !seen[p.Store] {
			seen[p.Store] = true
			stores = append(stores, p.Store)
		}
	}
	return stores
}
