package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"otto/models"
	"otto/utils"
)

// Snapshot is a fully consistent copy of the container state. Readers only
// ever see snapshots; mutations replace whole slices so a snapshot taken
// after a write is never torn.
type Snapshot struct {
	Messages          []models.Message       `json:"messages"`
	Cart              []models.CartItem      `json:"cart"`
	IsProcessing      bool                   `json:"isProcessing"`
	IsCartOpen        bool                   `json:"isCartOpen"`
	CurrentReasoning  []models.ReasoningStep `json:"currentReasoning"`
	OriginalImage     string                 `json:"originalImage,omitempty"`
	GeneratedImage    string                 `json:"generatedImage,omitempty"`
	IsGeneratingImage bool                   `json:"isGeneratingImage"`
	LastAnalysis      string                 `json:"lastAnalysis,omitempty"`
	CurrentSolution   *models.Solution       `json:"currentSolution,omitempty"`
}

// Listener receives a snapshot after every mutation.
type Listener func(Snapshot)

// ChatStore is the single source of truth for one chat session: transcript,
// cart, run state and image artifacts. The orchestrator is the only writer
// of run-scoped fields during a run; any number of readers may listen.
type ChatStore struct {
	mu sync.Mutex

	messages          []models.Message
	cart              []models.CartItem
	isProcessing      bool
	isCartOpen        bool
	currentReasoning  []models.ReasoningStep
	originalImage     string
	generatedImage    string
	isGeneratingImage bool
	lastAnalysis      string
	currentSolution   *models.Solution

	listeners []Listener
}

func New() *ChatStore {
	return &ChatStore{}
}

// AddListener registers a callback invoked with a snapshot after every
// mutation. Listeners run on the mutating goroutine, outside the lock.
func (s *ChatStore) AddListener(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current state.
func (s *ChatStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ChatStore) snapshotLocked() Snapshot {
	snap := Snapshot{
		Messages:          copyMessages(s.messages),
		Cart:              copyCart(s.cart),
		IsProcessing:      s.isProcessing,
		IsCartOpen:        s.isCartOpen,
		CurrentReasoning:  copySteps(s.currentReasoning),
		OriginalImage:     s.originalImage,
		GeneratedImage:    s.generatedImage,
		IsGeneratingImage: s.isGeneratingImage,
		LastAnalysis:      s.lastAnalysis,
	}
	if s.currentSolution != nil {
		sol := *s.currentSolution
		sol.Items = append([]models.SolutionItem(nil), s.currentSolution.Items...)
		snap.CurrentSolution = &sol
	}
	return snap
}

// publish must be called with the lock held; it captures the snapshot and
// listener set, releases nothing itself, and returns a closure the caller
// runs after unlocking.
func (s *ChatStore) publishLocked() func() {
	snap := s.snapshotLocked()
	ls := append([]Listener(nil), s.listeners...)
	return func() {
		for _, fn := range ls {
			fn(snap)
		}
	}
}

// --- Transcript ---

// AddUserMessage appends a user message and captures the uploaded image, if
// any, as the run's original image.
func (s *ChatStore) AddUserMessage(content, imageURL string) models.Message {
	msg := models.Message{
		ID:        "msg-" + utils.GetUUID(),
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
		ImageURL:  imageURL,
	}

	s.mu.Lock()
	s.messages = append(copyMessages(s.messages), msg)
	if imageURL != "" {
		s.originalImage = imageURL
	}
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
	return msg
}

// BeginRun reserves the store for a run in one operation: appends the user
// message and the thinking message, marks processing and opens the cart
// panel. Returns false without touching state when a run is already in
// flight, so a rejected submit leaves no stranded user message behind.
func (s *ChatStore) BeginRun(content, imageURL string, steps []models.ReasoningStep) (models.Message, bool) {
	msg := models.Message{
		ID:        "msg-" + utils.GetUUID(),
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
		ImageURL:  imageURL,
	}
	thinking := models.Message{
		ID:         "msg-thinking-" + utils.GetUUID(),
		Role:       models.RoleAssistant,
		Timestamp:  time.Now(),
		IsThinking: true,
		Reasoning:  copySteps(steps),
	}

	s.mu.Lock()
	if s.isProcessing {
		s.mu.Unlock()
		return models.Message{}, false
	}

	s.messages = append(copyMessages(s.messages), msg, thinking)
	if imageURL != "" {
		s.originalImage = imageURL
	}
	s.isProcessing = true
	s.currentReasoning = copySteps(steps)
	s.isCartOpen = true
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
	return msg, true
}

// StartProcessing begins a run: marks processing, stores the step list,
// appends the thinking message and opens the cart panel. Returns false
// without touching state when a run is already in flight (reject-while-busy).
func (s *ChatStore) StartProcessing(steps []models.ReasoningStep) bool {
	s.mu.Lock()
	if s.isProcessing {
		s.mu.Unlock()
		return false
	}

	thinking := models.Message{
		ID:         "msg-thinking-" + utils.GetUUID(),
		Role:       models.RoleAssistant,
		Timestamp:  time.Now(),
		IsThinking: true,
		Reasoning:  copySteps(steps),
	}

	s.isProcessing = true
	s.currentReasoning = copySteps(steps)
	s.messages = append(copyMessages(s.messages), thinking)
	s.isCartOpen = true
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
	return true
}

// UpdateStepStatus advances a step's status in both the standalone reasoning
// list and the copy embedded in the thinking message. Statuses only move
// forward: pending -> active -> completed.
func (s *ChatStore) UpdateStepStatus(stepID string, status models.StepStatus) {
	s.mu.Lock()
	s.currentReasoning = mapSteps(s.currentReasoning, stepID, func(st *models.ReasoningStep) {
		if allowedTransition(st.Status, status) {
			st.Status = status
		}
	})
	s.messages = mapThinkingReasoning(s.messages, stepID, func(st *models.ReasoningStep) {
		if allowedTransition(st.Status, status) {
			st.Status = status
		}
	})
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

// RewriteStepMessage replaces a step's message text mid-run, e.g. with
// richer copy from a live image analysis.
func (s *ChatStore) RewriteStepMessage(stepID, message string) {
	s.mu.Lock()
	s.currentReasoning = mapSteps(s.currentReasoning, stepID, func(st *models.ReasoningStep) {
		st.Message = message
	})
	s.messages = mapThinkingReasoning(s.messages, stepID, func(st *models.ReasoningStep) {
		st.Message = message
	})
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

// CompleteProcessing removes the thinking message, appends the solution
// message and records the solution as current.
func (s *ChatStore) CompleteProcessing(sol models.Solution) {
	content := fmt.Sprintf(
		"I've curated %d items for your %q. Check the cart panel to review and customize your selection.",
		len(sol.Items), strings.TrimPrefix(sol.Title, "Project: "),
	)

	solCopy := sol
	solCopy.Items = append([]models.SolutionItem(nil), sol.Items...)

	msg := models.Message{
		ID:        "msg-solution-" + utils.GetUUID(),
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
		Solution:  &solCopy,
	}

	s.mu.Lock()
	kept := make([]models.Message, 0, len(s.messages)+1)
	for _, m := range copyMessages(s.messages) {
		if !m.IsThinking {
			kept = append(kept, m)
		}
	}
	s.messages = append(kept, msg)
	s.isProcessing = false
	s.currentReasoning = nil
	s.currentSolution = &solCopy
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

// ClearChat resets the transcript and run state; the cart survives.
func (s *ChatStore) ClearChat() {
	s.mu.Lock()
	s.messages = nil
	s.isProcessing = false
	s.currentReasoning = nil
	s.currentSolution = nil
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

func (s *ChatStore) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMessages(s.messages)
}

func (s *ChatStore) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isProcessing
}

// --- Cart ---

// AddToCart inserts a product or, when it is already present, bumps its
// quantity. The cart panel opens on first insert.
func (s *ChatStore) AddToCart(p models.Product, role string) {
	s.mu.Lock()
	cart := copyCart(s.cart)
	found := false
	for i := range cart {
		if cart[i].Product.ID == p.ID {
			cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartItem{
			Product:  p,
			Role:     role,
			Quantity: 1,
			AddedAt:  time.Now(),
		})
		s.isCartOpen = true
	}
	s.cart = cart
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

// RemoveFromCart deletes the entry entirely, whatever its quantity.
func (s *ChatStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	cart := make([]models.CartItem, 0, len(s.cart))
	for _, it := range s.cart {
		if it.Product.ID != productID {
			cart = append(cart, it)
		}
	}
	s.cart = cart
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

// ClearCart empties the cart and drops the solution and generated image
// that produced it.
func (s *ChatStore) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.currentSolution = nil
	s.generatedImage = ""
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

func (s *ChatStore) CartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.cart)
}

func (s *ChatStore) SetCartOpen(open bool) {
	s.mu.Lock()
	s.isCartOpen = open
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

func (s *ChatStore) ToggleCart() {
	s.mu.Lock()
	s.isCartOpen = !s.isCartOpen
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

// --- Images & analysis ---

func (s *ChatStore) SetOriginalImage(url string) {
	s.mu.Lock()
	s.originalImage = url
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

func (s *ChatStore) OriginalImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.originalImage
}

func (s *ChatStore) SetGeneratedImage(url string) {
	s.mu.Lock()
	s.generatedImage = url
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

func (s *ChatStore) SetGeneratingImage(generating bool) {
	s.mu.Lock()
	s.isGeneratingImage = generating
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

func (s *ChatStore) SetLastAnalysis(text string) {
	s.mu.Lock()
	s.lastAnalysis = text
	notify := s.publishLocked()
	s.mu.Unlock()

	notify()
}

func (s *ChatStore) LastAnalysis() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAnalysis
}

// CurrentSolution returns a copy of the last completed solution, or nil.
func (s *ChatStore) CurrentSolution() *models.Solution {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentSolution == nil {
		return nil
	}
	sol := *s.currentSolution
	sol.Items = append([]models.SolutionItem(nil), s.currentSolution.Items...)
	return &sol
}

// --- copy helpers ---

func allowedTransition(from, to models.StepStatus) bool {
	switch {
	case from == models.StatusPending && to == models.StatusActive:
		return true
	case from == models.StatusActive && to == models.StatusCompleted:
		return true
	default:
		return false
	}
}

func copySteps(steps []models.ReasoningStep) []models.ReasoningStep {
	if steps == nil {
		return nil
	}
	out := make([]models.ReasoningStep, len(steps))
	copy(out, steps)
	return out
}

func copyCart(cart []models.CartItem) []models.CartItem {
	if cart == nil {
		return nil
	}
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}

func copyMessages(msgs []models.Message) []models.Message {
	if msgs == nil {
		return nil
	}
	out := make([]models.Message, len(msgs))
	for i, m := range msgs {
		m.Reasoning = copySteps(m.Reasoning)
		out[i] = m
	}
	return out
}

func mapSteps(steps []models.ReasoningStep, stepID string, apply func(*models.ReasoningStep)) []models.ReasoningStep {
	out := copySteps(steps)
	for i := range out {
		if out[i].ID == stepID {
			apply(&out[i])
		}
	}
	return out
}

func mapThinkingReasoning(msgs []models.Message, stepID string, apply func(*models.ReasoningStep)) []models.Message {
	out := copyMessages(msgs)
	for i := range out {
		if out[i].IsThinking && out[i].Reasoning != nil {
			for j := range out[i].Reasoning {
				if out[i].Reasoning[j].ID == stepID {
					apply(&out[i].Reasoning[j])
				}
			}
		}
	}
	return out
}
