package chathandlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"otto/agent"
	"otto/catalog"
	"otto/search"
	"otto/store"

	"github.com/julienschmidt/httprouter"
)

func setup(t *testing.T) *store.ChatStore {
	t.Helper()
	s := store.New()
	h := store.NewHub()
	go h.Run()
	t.Cleanup(h.Stop)

	o := agent.NewOrchestrator(s, agent.NewImageClient("http://127.0.0.1:0"))
	o.Delays = agent.Delays{}

	Init(s, o, h)
	return s
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSubmitMessageRequiresContent(t *testing.T) {
	setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	SubmitMessage(w, req, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitMessageRunsToCompletion(t *testing.T) {
	s := setup(t)

	body := `{"content":"refresh my living room"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", strings.NewReader(body))
	w := httptest.NewRecorder()
	SubmitMessage(w, req, nil)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}

	waitFor(t, func() bool { return s.CurrentSolution() != nil && !s.IsProcessing() })

	if got := len(s.CartItems()); got != 4 {
		t.Errorf("cart has %d items after run, want 4", got)
	}
}

func TestSubmitMessageSecondSubmitGets409(t *testing.T) {
	s := setup(t)
	// slow the run down so the second submit lands while it is in flight
	orch.Delays = agent.Delays{Settle: 100 * time.Millisecond}

	first := httptest.NewRequest(http.MethodPost, "/api/chat/messages",
		strings.NewReader(`{"content":"refresh my living room"}`))
	w1 := httptest.NewRecorder()
	SubmitMessage(w1, first, nil)
	if w1.Code != http.StatusAccepted {
		t.Fatalf("first submit status = %d, want 202", w1.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/api/chat/messages",
		strings.NewReader(`{"content":"another request"}`))
	w2 := httptest.NewRecorder()
	SubmitMessage(w2, second, nil)
	if w2.Code != http.StatusConflict {
		t.Fatalf("second submit status = %d, want 409", w2.Code)
	}

	// the rejected submit must not leave a stranded user message
	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages (user + thinking), got %d", len(msgs))
	}
	for _, m := range msgs {
		if m.Content == "another request" {
			t.Error("rejected submit appended a user message")
		}
	}

	waitFor(t, func() bool { return !s.IsProcessing() })

	// exactly one run happened
	var solutions int
	for _, m := range s.Messages() {
		if m.Solution != nil {
			solutions++
		}
	}
	if solutions != 1 {
		t.Errorf("expected 1 solution message, got %d", solutions)
	}
}

func TestSubmitMessageRejectedWhileBusy(t *testing.T) {
	s := setup(t)
	s.StartProcessing(search.GenerateReasoningSteps("q", false))

	body := `{"content":"another request"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", strings.NewReader(body))
	w := httptest.NewRecorder()
	SubmitMessage(w, req, nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestGetCartSummary(t *testing.T) {
	s := setup(t)
	sofa, _ := catalog.ProductByID("home-001") // 549990, 7 days
	lamp, _ := catalog.ProductByID("home-003") // 59990, 3 days
	s.AddToCart(sofa, "Main Sofa")
	s.AddToCart(sofa, "Main Sofa")
	s.AddToCart(lamp, "Accent Lamp")

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	GetCart(w, req, nil)

	var sum cartSummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := 549990*2 + 59990.0; sum.TotalPrice != want {
		t.Errorf("total = %f, want %f", sum.TotalPrice, want)
	}
	if sum.MaxDeliveryDays != 7 {
		t.Errorf("maxDeliveryDays = %d, want 7", sum.MaxDeliveryDays)
	}
	if sum.Currency != "CLP" {
		t.Errorf("currency = %q", sum.Currency)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"productId":"nope"}`))
	w := httptest.NewRecorder()
	AddCartItem(w, req, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRemoveCartItem(t *testing.T) {
	s := setup(t)
	sofa, _ := catalog.ProductByID("home-001")
	s.AddToCart(sofa, "Main Sofa")

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/home-001", nil)
	w := httptest.NewRecorder()
	RemoveCartItem(w, req, httprouter.Params{{Key: "productid", Value: "home-001"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(s.CartItems()) != 0 {
		t.Error("cart entry should be gone")
	}
}

func TestSearchCatalog(t *testing.T) {
	setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search?q=sofa&category=home", nil)
	w := httptest.NewRecorder()
	SearchCatalog(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Products []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Products) == 0 {
		t.Fatal("expected at least one match for sofa")
	}
	for _, p := range resp.Products {
		if p.Category != "home" {
			t.Errorf("product %s has category %q, want home", p.ID, p.Category)
		}
	}
}

func TestSearchCatalogRequiresQuery(t *testing.T) {
	setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search", nil)
	w := httptest.NewRecorder()
	SearchCatalog(w, req, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetCurrentSolutionWithoutRun(t *testing.T) {
	setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/solutions/current", nil)
	w := httptest.NewRecorder()
	GetCurrentSolution(w, req, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestProductQR(t *testing.T) {
	setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/qr/home-001", nil)
	w := httptest.NewRecorder()
	ProductQR(w, req, httprouter.Params{{Key: "productid", Value: "home-001"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("expected PNG bytes")
	}
}

func TestSolutionPDF(t *testing.T) {
	s := setup(t)
	sol, err := search.BuildSolution("living room")
	if err != nil {
		t.Fatalf("BuildSolution: %v", err)
	}
	s.CompleteProcessing(sol)

	req := httptest.NewRequest(http.MethodGet, "/api/solutions/current/pdf", nil)
	w := httptest.NewRecorder()
	SolutionPDF(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("body does not look like a PDF")
	}
}

func TestClearChatKeepsCart(t *testing.T) {
	s := setup(t)
	sofa, _ := catalog.ProductByID("home-001")
	s.AddToCart(sofa, "Main Sofa")
	s.AddUserMessage("hola", "")

	req := httptest.NewRequest(http.MethodPost, "/api/chat/clear", nil)
	w := httptest.NewRecorder()
	ClearChat(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(s.Messages()) != 0 {
		t.Error("transcript should be empty")
	}
	if len(s.CartItems()) != 1 {
		t.Error("cart should survive")
	}
}
