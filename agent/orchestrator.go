package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"otto/imgutil"
	"otto/models"
	"otto/search"
	"otto/store"
	"otto/vision"
)

// ErrBusy is returned when a run is requested while another is in flight.
var ErrBusy = errors.New("a run is already in progress")

// Delays controls the pacing of a run. Zero values make every wait
// immediate, which is what tests want.
type Delays struct {
	Settle   time.Duration
	Step     time.Duration
	Search   time.Duration
	Optimize time.Duration
	PreBuild time.Duration
	CartItem time.Duration
	DoneWait time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Settle:   300 * time.Millisecond,
		Step:     600 * time.Millisecond,
		Search:   1200 * time.Millisecond,
		Optimize: 800 * time.Millisecond,
		PreBuild: 500 * time.Millisecond,
		CartItem: 300 * time.Millisecond,
		DoneWait: 600 * time.Millisecond,
	}
}

// Orchestrator drives a full reasoning run against the store: step
// progression, solution build, cart population and the optional image
// round-trips.
type Orchestrator struct {
	Store  *store.ChatStore
	Images *ImageClient
	Delays Delays

	sleep func(ctx context.Context, d time.Duration)
}

func NewOrchestrator(s *store.ChatStore, images *ImageClient) *Orchestrator {
	return &Orchestrator{
		Store:  s,
		Images: images,
		Delays: DefaultDelays(),
		sleep:  sleepCtx,
	}
}

// Run reserves the store and executes one full run for the query. It
// returns ErrBusy when another run holds the store; any other failure along
// the way degrades to fallback copy and the run still completes with a
// solution message.
func (o *Orchestrator) Run(ctx context.Context, query, imageDataURL string) error {
	steps := search.GenerateReasoningSteps(query, imageDataURL != "")

	if !o.Store.StartProcessing(steps) {
		return ErrBusy
	}
	return o.RunReserved(ctx, query, imageDataURL, steps)
}

// RunReserved executes a run whose store reservation was already made, e.g.
// by the submit handler via BeginRun. The steps must be the ones the store
// was reserved with.
func (o *Orchestrator) RunReserved(ctx context.Context, query, imageDataURL string, steps []models.ReasoningStep) error {
	hasImage := imageDataURL != ""

	roomType := "room"
	var solution models.Solution
	built := false

	for _, step := range steps {
		o.sleep(ctx, o.Delays.Settle)

		switch step.Type {
		case models.StepVision:
			if hasImage {
				if rt := o.analyzeImage(ctx, step.ID, imageDataURL); rt != "" {
					roomType = rt
				}
			}
			o.runStep(ctx, step)

		case models.StepDone:
			if hasImage && built {
				o.Store.RewriteStepMessage(step.ID, "Generating your room visualization...")
				o.Store.UpdateStepStatus(step.ID, models.StatusActive)
				o.generateVisualization(ctx, step.ID, imageDataURL, roomType, solution)
			} else {
				o.Store.UpdateStepStatus(step.ID, models.StatusActive)
				o.sleep(ctx, o.Delays.DoneWait)
			}
			o.Store.UpdateStepStatus(step.ID, models.StatusCompleted)

		default:
			o.runStep(ctx, step)
		}

		if step.Type == models.StepOptimize {
			o.sleep(ctx, o.Delays.PreBuild)
			sol, err := search.BuildSolution(query)
			if err != nil {
				log.Printf("[agent] build solution failed: %v", err)
			} else {
				solution = sol
				built = true
				for _, item := range sol.Items {
					o.Store.AddToCart(item.Product, item.Role)
					o.sleep(ctx, o.Delays.CartItem)
				}
			}
		}
	}

	o.Store.CompleteProcessing(solution)
	if !built {
		return fmt.Errorf("run completed without a solution")
	}
	return nil
}

// runStep walks a plain step through active -> completed with its duration.
func (o *Orchestrator) runStep(ctx context.Context, step models.ReasoningStep) {
	o.Store.UpdateStepStatus(step.ID, models.StatusActive)
	o.sleep(ctx, o.stepDuration(step.Type))
	o.Store.UpdateStepStatus(step.ID, models.StatusCompleted)
}

func (o *Orchestrator) stepDuration(t models.StepType) time.Duration {
	switch t {
	case models.StepSearch:
		return o.Delays.Search
	case models.StepOptimize:
		return o.Delays.Optimize
	default:
		return o.Delays.Step
	}
}

// analyzeImage calls the analysis endpoint before the vision step activates
// and rewrites the step copy with what the model saw. Failures keep the
// generic copy; the run never aborts over them. Returns the detected room
// type, or "" when the analysis was unusable.
func (o *Orchestrator) analyzeImage(ctx context.Context, stepID, image string) string {
	analysis, err := o.Images.Analyze(ctx, image)
	if err != nil {
		log.Printf("[agent] image analysis failed: %v", err)
		return ""
	}

	o.Store.SetLastAnalysis(analysis.Analysis)
	if !analysis.Structured() {
		return ""
	}

	o.Store.RewriteStepMessage(stepID, fmt.Sprintf(
		"Detected %s in %s style. Mapping furniture placement...",
		strings.ToLower(analysis.RoomType), strings.ToLower(analysis.Style),
	))
	return analysis.RoomType
}

// generateVisualization runs the image round-trip for the final step. The
// generating flag is cleared no matter how the call ends.
func (o *Orchestrator) generateVisualization(ctx context.Context, stepID, image, roomType string, sol models.Solution) {
	o.Store.SetGeneratingImage(true)
	defer o.Store.SetGeneratingImage(false)

	payload := imgutil.CompressIfNeeded(image, imgutil.MaxPayloadKB)

	resp, err := o.Images.Generate(ctx, GenerateRequest{
		Image:    payload,
		Prompt:   visualizationPrompt(roomType, sol),
		Products: productRefs(sol),
		Analysis: o.Store.LastAnalysis(),
	})
	if err != nil {
		log.Printf("[agent] image generation failed: %v", err)
		o.Store.RewriteStepMessage(stepID, "Solution generated.")
		return
	}

	o.Store.SetGeneratedImage(resp.ImageURL)
	if resp.Analysis != "" {
		o.Store.SetLastAnalysis(resp.Analysis)
	}
	o.Store.RewriteStepMessage(stepID, "Visualization ready. Open the cart panel to see your room.")
}

func visualizationPrompt(roomType string, sol models.Solution) string {
	items := make([]string, 0, len(sol.Items))
	for _, it := range sol.Items {
		items = append(items, fmt.Sprintf("%s (%s)", it.Product.Name, it.Product.Store))
	}

	return fmt.Sprintf(`Transform this %s photo into a professionally styled interior design visualization.
Add these furniture items naturally into the space: %s.
Maintain the room's original architecture and lighting.
Create a cohesive, modern Japandi aesthetic with clean lines and natural materials.
The result should look like a high-end interior design magazine photo.
Keep the same camera angle and perspective as the original image.`,
		strings.ToLower(roomType), strings.Join(items, ", "))
}

func productRefs(sol models.Solution) []vision.ProductRef {
	refs := make([]vision.ProductRef, 0, len(sol.Items))
	for _, it := range sol.Items {
		refs = append(refs, vision.ProductRef{
			Name:        it.Product.Name,
			Description: it.Product.Description,
			ImageURL:    it.Product.ImageURL,
		})
	}
	return refs
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
