package search

import (
	"testing"

	"otto/catalog"
)

func TestMatchTemplate(t *testing.T) {
	cases := []struct {
		query string
		want  catalog.TemplateKey
	}{
		{"I want to redecorate my living room", catalog.LivingRoom},
		{"quiero decorar mi sala", catalog.LivingRoom},
		{"necesito un sofá nuevo", catalog.LivingRoom},
		{"something japandi please", catalog.LivingRoom},
		{"a casual weekend outfit", catalog.CasualOutfit},
		{"ropa para el fin de semana", catalog.CasualOutfit},
		{"what should I wear to the office", catalog.OfficeStyle},
		{"tengo una reunión formal", catalog.OfficeStyle},
		{"weekend diy project", catalog.CasualOutfit}, // "weekend" is checked before "diy"
		{"necesito una herramienta para reparar", catalog.HomeImprovement},
		{"", catalog.LivingRoom},
		{"completely unrelated query about pizza", catalog.LivingRoom},
	}

	for _, c := range cases {
		if got := MatchTemplate(c.query); got != c.want {
			t.Errorf("MatchTemplate(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}

func TestMatchTemplateCaseInsensitive(t *testing.T) {
	if got := MatchTemplate("OFFICE look"); got != catalog.OfficeStyle {
		t.Errorf("expected uppercase keywords to match, got %q", got)
	}
}

func TestDetectStyle(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"estilo japandi con madera", "Japandi"},
		{"algo moderno y trendy", "Modern"},
		{"un look clásico y elegante", "Classic"},
		{"loft industrial", "Industrial"},
		{"vibes boho", "Bohemian"},
		{"no style words at all", DefaultStyle},
		{"", DefaultStyle},
	}

	for _, c := range cases {
		if got := DetectStyle(c.query); got != c.want {
			t.Errorf("DetectStyle(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}
