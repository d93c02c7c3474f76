package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func TestBroadcastChangeReachesClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.BroadcastChange("employees-data", "create", "7")

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if evt.Type != "employees-data_created" || evt.Action != "create" || evt.Slot != "employees-data" {
		t.Fatalf("unexpected event: %+v", evt)
	}
}

func TestBroadcastOnNilHub(t *testing.T) {
	var hub *Hub
	hub.Broadcast(Event{Type: "x"})
}

func TestBroadcastDropsSlowClientWithoutBlocking(t *testing.T) {
	hub := NewHub(zap.NewNop())
	stalled := newClient(nil)
	hub.register(stalled)

	finished := make(chan struct{})
	go func() {
		for i := 0; i <= sendBuffer; i++ {
			hub.BroadcastChange("gtech-events", "update", i)
		}
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a client that never reads")
	}

	if hub.Clients() != 0 {
		t.Fatalf("slow client should be removed, %d left", hub.Clients())
	}
	select {
	case <-stalled.done:
	default:
		t.Fatal("slow client should be stopped")
	}
	if len(stalled.send) != sendBuffer {
		t.Fatalf("queued %d messages, want %d", len(stalled.send), sendBuffer)
	}
}
