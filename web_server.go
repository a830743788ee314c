package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"symreg_gp_engine/logx"

	"github.com/gorilla/websocket"
)

// WSHub manages WebSocket connections and broadcasts
type WSHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan WSMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
	running    bool
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type string      `json:"type"` // "generation", "solution", "status", etc.
	Data interface{} `json:"data"` // Payload data
	Time int64       `json:"time"` // Unix timestamp
}

var wsHub *WSHub
var webDashboardEnabled = false

// WSMessageType constants
const (
	MsgTypeGeneration = "generation"
	MsgTypeSolution   = "solution"
	MsgTypeStatus     = "status"
	MsgTypeError      = "error"
	MsgTypeWarning    = "warning"
)

// InitWebServer initializes the WebSocket hub
func InitWebServer() {
	wsHub = &WSHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan WSMessage, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		running:    true,
	}
	go wsHub.run()
}

// StartWebServer starts the HTTP/WebSocket server
func StartWebServer(port int) error {
	InitWebServer()

	// Serve static files (dashboard.html)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "dashboard.html")
	})

	// WebSocket endpoint
	http.HandleFunc("/ws", wsHub.handleWebSocket)

	// CORS middleware wrapper
	handler := corsMiddleware(http.DefaultServeMux)

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("\n%s Dashboard running at http://localhost%s\n", logx.Icon("info"), addr)
	fmt.Printf("%s Open this URL in your browser to view the dashboard\n", logx.Icon("info"))
	fmt.Printf("%s Press Ctrl+C to stop\n", logx.Icon("info"))

	return http.ListenAndServe(addr, handler)
}

// handleWebSocket handles WebSocket connections
func (hub *WSHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Upgrade HTTP to WebSocket
	ws, err := websocket.Upgrade(w, r, nil, 0, 0)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	// Register client
	hub.register <- ws
	defer func() {
		hub.unregister <- ws
		ws.Close()
	}()

	// Send buffered messages for new connections
	hub.sendBufferedMessages(ws)

	// Read messages from client
	for {
		var msg WSMessage
		err := ws.ReadJSON(&msg)
		if err != nil {
			break
		}
		// Client can send ping/heartbeat if needed
	}
}

// run processes messages in the hub
func (hub *WSHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.mutex.Lock()
			hub.clients[client] = true
			hub.mutex.Unlock()

		case client := <-hub.unregister:
			hub.mutex.Lock()
			if _, ok := hub.clients[client]; ok {
				delete(hub.clients, client)
			}
			hub.mutex.Unlock()

		case message := <-hub.broadcast:
			hub.mutex.RLock()
			for client := range hub.clients {
				err := client.WriteJSON(message)
				if err != nil {
					// Client disconnected, will be cleaned up by unregister
					continue
				}
			}
			hub.mutex.RUnlock()
		}
	}
}

// Broadcast sends a message to all connected clients
func Broadcast(msgType string, data interface{}) {
	if !webDashboardEnabled || wsHub == nil {
		return
	}

	msg := WSMessage{
		Type: msgType,
		Data: data,
		Time: time.Now().Unix(),
	}

	select {
	case wsHub.broadcast <- msg:
		// Message queued
	default:
		// Channel full, skip this message (backpressure protection)
	}
}

// sendBufferedMessages sends recent history to new connections
func (hub *WSHub) sendBufferedMessages(ws *websocket.Conn) {
	// Send current status
	statusMsg := WSMessage{
		Type: MsgTypeStatus,
		Data: map[string]interface{}{
			"status": "running",
			"msg":    "Dashboard connected",
		},
		Time: time.Now().Unix(),
	}
	ws.WriteJSON(statusMsg)
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port starting from startPort
func FindAvailablePort(startPort int) int {
	for port := startPort; port < 9000; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()
			return port
		}
	}
	return startPort // fallback
}

// Message structures for WebSocket payloads

// GenerationData represents one generation's statistics
type GenerationData struct {
	Generation  int     `json:"generation"`
	BestError   float64 `json:"best_error"`
	MedianError float64 `json:"median_error"`
	MeanSize    float64 `json:"mean_size"`
	BestExpr    string  `json:"best_expr"`
	RatePerSec  float64 `json:"rate_per_sec"`
	TimeElapsed string  `json:"time_elapsed"`
}

// SolutionData represents a finished run's result
type SolutionData struct {
	Solved      bool    `json:"solved"`
	Expression  string  `json:"expression"`
	Error       float64 `json:"error"`
	Generations int     `json:"generations"`
	TreeSize    int     `json:"tree_size"`
	Timestamp   string  `json:"timestamp"`
}

// Helper functions for sending specific message types

func SendGeneration(st GenStats, rate float64, elapsed time.Duration) {
	data := GenerationData{
		Generation:  st.Generation,
		BestError:   st.BestErr,
		MedianError: st.MedianErr,
		MeanSize:    st.MeanSize,
		BestExpr:    st.BestExpr,
		RatePerSec:  rate,
		TimeElapsed: logx.FormatDuration(elapsed),
	}
	Broadcast(MsgTypeGeneration, data)
}

func SendSolution(res EvolveResult) {
	data := SolutionData{
		Solved:      res.Solved,
		Expression:  treeString(res.Best.Tree),
		Error:       res.Best.Err,
		Generations: res.Generations,
		TreeSize:    treeSize(res.Best.Tree),
		Timestamp:   time.Now().Format("2006-01-02 15:04:05"),
	}
	Broadcast(MsgTypeSolution, data)
}

func SendStatus(status, msg string) {
	data := map[string]interface{}{
		"status": status,
		"msg":    msg,
	}
	Broadcast(MsgTypeStatus, data)
}

func SendError(msg string) {
	Broadcast(MsgTypeError, msg)
}

func SendWarning(msg string) {
	Broadcast(MsgTypeWarning, msg)
}
