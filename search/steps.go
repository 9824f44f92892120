package search

import (
	"fmt"
	"strings"

	"otto/catalog"
	"otto/models"
)

// GenerateReasoningSteps produces the fixed five-step pipeline shown to the
// user, all pending. Pure function of the query and hasImage flag.
func GenerateReasoningSteps(query string, hasImage bool) []models.ReasoningStep {
	style := DetectStyle(query)
	key := MatchTemplate(query)
	tmpl, _ := catalog.TemplateFor(key)
	stores := catalog.StoresFor(tmpl)

	visionMsg := "Analyzing request parameters..."
	if hasImage {
		visionMsg = "Scanning image composition and room geometry..."
	}

	return []models.ReasoningStep{
		{
			ID:      "step-1",
			Type:    models.StepVision,
			Message: visionMsg,
			Status:  models.StatusPending,
		},
		{
			ID:      "step-2",
			Type:    models.StepDetect,
			Message: fmt.Sprintf("Identifying style preference: %s...", style),
			Status:  models.StatusPending,
		},
		{
			ID:      "step-3",
			Type:    models.StepSearch,
			Message: fmt.Sprintf("Scraping inventory: %s...", strings.Join(stores, ", ")),
			Status:  models.StatusPending,
		},
		{
			ID:      "step-4",
			Type:    models.StepOptimize,
			Message: "Comparing prices and delivery times...",
			Status:  models.StatusPending,
		},
		{
			ID:      "step-5",
			Type:    models.StepDone,
			Message: "Solution generated.",
			Status:  models.StatusPending,
		},
	}
}
