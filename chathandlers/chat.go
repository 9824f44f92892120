package chathandlers

import (
	"encoding/json"
	"log"
	"net/http"

	"otto/agent"
	"otto/globals"
	"otto/search"
	"otto/store"
	"otto/utils"

	"github.com/julienschmidt/httprouter"
)

var (
	chatStore *store.ChatStore
	orch      *agent.Orchestrator
	hub       *store.Hub
)

// Init wires the handler package to its collaborators. Must be called once
// before the routes are mounted.
func Init(s *store.ChatStore, o *agent.Orchestrator, h *store.Hub) {
	chatStore = s
	orch = o
	hub = h
}

type submitRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// SubmitMessage handles POST /api/chat/messages: records the user message
// and kicks off a run in the background. Rejected with 409 while a run is
// in flight.
func SubmitMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Content == "" && req.ImageURL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Message content or image is required")
		return
	}

	// reserve the store before responding: a rejected submit must not
	// touch the transcript
	steps := search.GenerateReasoningSteps(req.Content, req.ImageURL != "")
	msg, ok := chatStore.BeginRun(req.Content, req.ImageURL, steps)
	if !ok {
		utils.RespondWithError(w, http.StatusConflict, "A run is already in progress")
		return
	}

	go func() {
		if err := orch.RunReserved(globals.Ctx, msg.Content, msg.ImageURL, steps); err != nil {
			log.Printf("[chat] run failed: %v", err)
		}
	}()

	utils.RespondWithJSON(w, http.StatusAccepted, utils.M{"message": msg})
}

// GetMessages handles GET /api/chat/messages.
func GetMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"messages": chatStore.Messages()})
}

// GetState handles GET /api/chat/state: the full session snapshot, same
// shape the websocket pushes.
func GetState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, chatStore.Snapshot())
}

// ClearChat handles POST /api/chat/clear. The cart is left alone.
func ClearChat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	chatStore.ClearChat()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}
