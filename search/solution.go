package search

import (
	"fmt"

	"otto/catalog"
	"otto/models"
	"otto/utils"
)

// BuildSolution expands the template matched by query into a priced,
// role-labeled product bundle. Deterministic for a given query and catalog
// snapshot, apart from the generated id.
func BuildSolution(query string) (models.Solution, error) {
	key := MatchTemplate(query)
	tmpl, ok := catalog.TemplateFor(key)
	if !ok {
		return models.Solution{}, fmt.Errorf("no template for key %q", key)
	}
	if len(tmpl.ProductIDs) != len(tmpl.Roles) {
		return models.Solution{}, fmt.Errorf("template %q: %d product ids vs %d roles", key, len(tmpl.ProductIDs), len(tmpl.Roles))
	}

	items := make([]models.SolutionItem, 0, len(tmpl.ProductIDs))
	var total float64
	for i, id := range tmpl.ProductIDs {
		p, ok := catalog.ProductByID(id)
		if !ok {
			return models.Solution{}, fmt.Errorf("template %q references unknown product %q", key, id)
		}
		items = append(items, models.SolutionItem{Role: tmpl.Roles[i], Product: p})
		total += p.Price
	}

	return models.Solution{
		ID:          "solution-" + utils.GetUUID(),
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Items:       items,
		TotalPrice:  total,
		Currency:    "CLP",
	}, nil
}
