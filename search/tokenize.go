package search

import (
	"regexp"
	"strings"

	"otto/catalog"
	"otto/models"
)

// -------------------------
// Tokenization
// -------------------------

var tokenRegex = regexp.MustCompile(`(?i)[a-záéíóúñü0-9_]+`)
var stopWords = map[string]bool{
	"the": true, "and": true, "of": true, "in": true, "to": true,
	"for": true, "on": true, "with": true, "a": true, "an": true,
	"my": true, "el": true, "la": true, "de": true, "un": true,
	"una": true, "mi": true,
}

func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	matches := tokenRegex.FindAllString(text, -1)

	out := make([]string, 0, len(matches))
	seen := map[string]struct{}{}
	for _, m := range matches {
		t := strings.ToLower(m)
		if stopWords[t] {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SearchProducts filters the catalog by query tokens against product name,
// description and tags. An empty category matches everything.
func SearchProducts(query string, category models.ProductCategory) []models.Product {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var out []models.Product
	for _, p := range catalog.AllProducts() {
		if category != "" && p.Category != category {
			continue
		}
		if productMatches(p, tokens) {
			out = append(out, p)
		}
	}
	return out
}

func productMatches(p models.Product, tokens []string) bool {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	for _, tok := range tokens {
		if strings.Contains(name, tok) || strings.Contains(desc, tok) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(tag, tok) {
				return true
			}
		}
	}
	return false
}
