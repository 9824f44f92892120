package chathandlers

import (
	"encoding/json"
	"log"
	"net/http"

	"otto/store"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// StateSocket handles GET /api/chat/ws: upgrades to a websocket and streams
// a full state snapshot on connect and after every mutation.
func StateSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	client := &store.Client{Send: make(chan []byte, 256)}
	hub.Register(client)

	// initial snapshot so the client renders without waiting for a change
	if data, err := json.Marshal(chatStore.Snapshot()); err == nil {
		select {
		case client.Send <- data:
		default:
		}
	}

	go writePump(conn, client)
	go readPump(conn, client)
}

// writePump drains the client channel onto the socket. Ends when the hub
// closes the channel or a write fails.
func writePump(conn *websocket.Conn, client *store.Client) {
	defer conn.Close()
	for data := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; the socket is push-only. A read error
// means the peer went away, so the client is unregistered.
func readPump(conn *websocket.Conn, client *store.Client) {
	defer conn.Close()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}
