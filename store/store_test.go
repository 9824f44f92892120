package store

import (
	"strings"
	"testing"

	"otto/models"
	"otto/search"
)

func demoProduct(id string) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    1000,
		Currency: "CLP",
		Store:    "Falabella",
	}
}

func TestStartProcessingRejectsWhileBusy(t *testing.T) {
	s := New()
	steps := search.GenerateReasoningSteps("living room", false)

	if !s.StartProcessing(steps) {
		t.Fatal("first StartProcessing should succeed")
	}
	if s.StartProcessing(steps) {
		t.Fatal("second StartProcessing should be rejected while busy")
	}
	if !s.IsProcessing() {
		t.Fatal("store should report processing")
	}
}

func TestBeginRunAppendsUserAndThinkingMessages(t *testing.T) {
	s := New()
	steps := search.GenerateReasoningSteps("hola", true)

	msg, ok := s.BeginRun("hola", "data:image/jpeg;base64,xyz", steps)
	if !ok {
		t.Fatal("BeginRun should succeed on an idle store")
	}
	if msg.Role != models.RoleUser || msg.Content != "hola" {
		t.Errorf("unexpected user message %+v", msg)
	}

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].ID != msg.ID || msgs[1].IsThinking != true {
		t.Error("transcript should be user message followed by thinking message")
	}
	if !s.IsProcessing() {
		t.Error("store should be processing")
	}
	if s.Snapshot().OriginalImage == "" {
		t.Error("uploaded image should be captured")
	}
}

func TestBeginRunRejectedWhileBusyLeavesTranscriptUntouched(t *testing.T) {
	s := New()
	steps := search.GenerateReasoningSteps("first", false)
	if _, ok := s.BeginRun("first", "", steps); !ok {
		t.Fatal("setup: first BeginRun failed")
	}
	before := len(s.Messages())

	if _, ok := s.BeginRun("second", "", steps); ok {
		t.Fatal("second BeginRun should be rejected while busy")
	}
	if got := len(s.Messages()); got != before {
		t.Errorf("rejected submit changed the transcript: %d -> %d messages", before, got)
	}
}

func TestStartProcessingAppendsThinkingMessage(t *testing.T) {
	s := New()
	s.AddUserMessage("hola", "")
	s.StartProcessing(search.GenerateReasoningSteps("hola", false))

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	thinking := msgs[1]
	if !thinking.IsThinking {
		t.Fatal("second message should be the thinking message")
	}
	if len(thinking.Reasoning) != 5 {
		t.Errorf("thinking message carries %d steps, want 5", len(thinking.Reasoning))
	}
	if !s.Snapshot().IsCartOpen {
		t.Error("cart panel should open when a run starts")
	}
}

func TestUpdateStepStatusIsMonotonic(t *testing.T) {
	s := New()
	steps := search.GenerateReasoningSteps("q", false)
	s.StartProcessing(steps)

	s.UpdateStepStatus("step-1", models.StatusActive)
	s.UpdateStepStatus("step-1", models.StatusCompleted)
	// a stale pending update must not regress the step
	s.UpdateStepStatus("step-1", models.StatusActive)

	snap := s.Snapshot()
	if snap.CurrentReasoning[0].Status != models.StatusCompleted {
		t.Errorf("step status = %q, want completed", snap.CurrentReasoning[0].Status)
	}

	// completing a pending step without activating it first is ignored
	s.UpdateStepStatus("step-2", models.StatusCompleted)
	if got := s.Snapshot().CurrentReasoning[1].Status; got != models.StatusPending {
		t.Errorf("step-2 status = %q, want pending", got)
	}
}

func TestUpdateStepStatusSyncsThinkingMessage(t *testing.T) {
	s := New()
	s.StartProcessing(search.GenerateReasoningSteps("q", false))
	s.UpdateStepStatus("step-1", models.StatusActive)

	for _, m := range s.Messages() {
		if !m.IsThinking {
			continue
		}
		if m.Reasoning[0].Status != models.StatusActive {
			t.Errorf("thinking copy status = %q, want active", m.Reasoning[0].Status)
		}
	}
}

func TestRewriteStepMessage(t *testing.T) {
	s := New()
	s.StartProcessing(search.GenerateReasoningSteps("q", true))
	s.RewriteStepMessage("step-1", "Detected bedroom in modern style. Mapping furniture placement...")

	snap := s.Snapshot()
	if !strings.Contains(snap.CurrentReasoning[0].Message, "bedroom") {
		t.Errorf("reasoning message not rewritten: %q", snap.CurrentReasoning[0].Message)
	}
	for _, m := range snap.Messages {
		if m.IsThinking && !strings.Contains(m.Reasoning[0].Message, "bedroom") {
			t.Errorf("thinking copy not rewritten: %q", m.Reasoning[0].Message)
		}
	}
}

func TestCompleteProcessingReplacesThinkingMessage(t *testing.T) {
	s := New()
	s.AddUserMessage("living room", "")
	s.StartProcessing(search.GenerateReasoningSteps("living room", false))

	sol := models.Solution{
		ID:    "solution-1",
		Title: "Project: Living Room Refresh",
		Items: []models.SolutionItem{
			{Role: "Main Sofa", Product: demoProduct("home-001")},
			{Role: "Area Rug", Product: demoProduct("home-004")},
		},
		Currency: "CLP",
	}
	s.CompleteProcessing(sol)

	msgs := s.Messages()
	for _, m := range msgs {
		if m.IsThinking {
			t.Fatal("thinking message should be removed")
		}
	}

	last := msgs[len(msgs)-1]
	if last.Role != models.RoleAssistant || last.Solution == nil {
		t.Fatal("last message should be the assistant solution message")
	}
	want := `I've curated 2 items for your "Living Room Refresh". Check the cart panel to review and customize your selection.`
	if last.Content != want {
		t.Errorf("solution message = %q, want %q", last.Content, want)
	}

	if s.IsProcessing() {
		t.Error("processing flag should clear on completion")
	}
	if s.CurrentSolution() == nil {
		t.Error("current solution should be recorded")
	}
}

func TestAddToCartBumpsQuantity(t *testing.T) {
	s := New()
	p := demoProduct("home-001")

	s.AddToCart(p, "Main Sofa")
	s.AddToCart(p, "Main Sofa")

	items := s.CartItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 cart entry, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", items[0].Quantity)
	}
}

func TestRemoveFromCartDeletesEntry(t *testing.T) {
	s := New()
	s.AddToCart(demoProduct("home-001"), "Main Sofa")
	s.AddToCart(demoProduct("home-001"), "Main Sofa")
	s.RemoveFromCart("home-001")

	if got := len(s.CartItems()); got != 0 {
		t.Errorf("expected empty cart, got %d entries", got)
	}
}

func TestClearCartDropsSolutionAndImage(t *testing.T) {
	s := New()
	s.AddToCart(demoProduct("home-001"), "Main Sofa")
	s.SetGeneratedImage("https://cdn.example/out.png")
	s.CompleteProcessing(models.Solution{ID: "solution-1", Title: "Project: X"})

	s.ClearCart()

	if len(s.CartItems()) != 0 {
		t.Error("cart should be empty")
	}
	if s.CurrentSolution() != nil {
		t.Error("solution should be dropped with the cart")
	}
	if s.Snapshot().GeneratedImage != "" {
		t.Error("generated image should be dropped with the cart")
	}
}

func TestClearChatKeepsCart(t *testing.T) {
	s := New()
	s.AddUserMessage("hola", "")
	s.AddToCart(demoProduct("home-001"), "Main Sofa")

	s.ClearChat()

	if len(s.Messages()) != 0 {
		t.Error("transcript should be empty")
	}
	if len(s.CartItems()) != 1 {
		t.Error("cart should survive a chat clear")
	}
}

func TestListenerReceivesSnapshots(t *testing.T) {
	s := New()
	got := make(chan Snapshot, 10)
	s.AddListener(func(snap Snapshot) { got <- snap })

	s.AddUserMessage("hola", "data:image/jpeg;base64,xyz")

	snap := <-got
	if len(snap.Messages) != 1 {
		t.Fatalf("snapshot has %d messages, want 1", len(snap.Messages))
	}
	if snap.OriginalImage == "" {
		t.Error("snapshot should carry the uploaded image")
	}
}
