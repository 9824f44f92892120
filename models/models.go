package models

import "time"

// ProductCategory is the fixed catalog category set.
type ProductCategory string

const (
	CategoryHome    ProductCategory = "home"
	CategoryFashion ProductCategory = "fashion"
)

// Product represents a single catalog entry. Products are immutable once
// defined; the catalog owns them.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"` // unit price, non-negative
	Currency     string          `json:"currency"`
	Store        string          `json:"store"`
	StoreURL     string          `json:"storeUrl"`
	ImageURL     string          `json:"imageUrl"`
	Category     ProductCategory `json:"category"`
	Tags         []string        `json:"tags"`
	DeliveryDays int             `json:"deliveryDays"`
}

// SolutionItem pairs a product with the slot it fills, e.g. "Main Sofa".
type SolutionItem struct {
	Role    string  `json:"role"`
	Product Product `json:"product"`
}

// Solution is a priced, ordered bundle of role-labeled products. It is
// created once per completed run and never mutated afterwards; cart edits
// diverge from it independently.
type Solution struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Items       []SolutionItem `json:"items"`
	TotalPrice  float64        `json:"totalPrice"` // sum of unit prices at build time
	Currency    string         `json:"currency"`
}

// CartItem holds a product in the cart. Quantity starts at 1 and increments
// on duplicate adds; removal deletes the whole entry. The cart is keyed by
// product id.
type CartItem struct {
	Product  Product   `json:"product"`
	Role     string    `json:"role"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// StepType is one stage of the simulated analysis pipeline.
type StepType string

const (
	StepVision   StepType = "VISION"
	StepDetect   StepType = "DETECT"
	StepSearch   StepType = "SEARCH"
	StepOptimize StepType = "OPTIMIZE"
	StepDone     StepType = "DONE"
)

// StepStatus is monotonic per step: pending -> active -> completed.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusActive    StepStatus = "active"
	StatusCompleted StepStatus = "completed"
)

// ReasoningStep is one user-visible stage of a run. The message may be
// rewritten mid-run with richer text from live analysis.
type ReasoningStep struct {
	ID      string     `json:"id"`
	Type    StepType   `json:"type"`
	Message string     `json:"message"`
	Status  StepStatus `json:"status"`
}

// MessageRole is the author of a transcript message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one transcript entry. A thinking message carries the live
// reasoning list and is later removed and replaced by a solution message,
// so the transcript is not strictly append-only.
type Message struct {
	ID         string          `json:"id"`
	Role       MessageRole     `json:"role"`
	Content    string          `json:"content"`
	Timestamp  time.Time       `json:"timestamp"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	Solution   *Solution       `json:"solution,omitempty"`
	Reasoning  []ReasoningStep `json:"reasoning,omitempty"`
	IsThinking bool            `json:"isThinking,omitempty"`
}
