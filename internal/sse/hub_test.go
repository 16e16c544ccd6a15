package sse

import (
	"testing"
	"time"

	"github.com/mcoot/kumkom/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "turn-result",
			data:      `{"kind":"commit"}`,
			expected:  "event: turn-result\ndata: {\"kind\":\"commit\"}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "tile-placed",
			data:      "{\n  \"coord\": 1\n}",
			expected:  "event: tile-placed\ndata: {\ndata:   \"coord\": 1\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single line", input: "hello", expected: []string{"hello"}},
		{name: "two lines", input: "line1\nline2", expected: []string{"line1", "line2"}},
		{name: "trailing newline", input: "line1\n", expected: []string{"line1"}},
		{name: "empty string", input: "", expected: []string{""}},
		{name: "crlf line endings", input: "line1\r\nline2\r\n", expected: []string{"line1", "line2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitLines(%q) returned %d lines, want %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q",
						tt.input, i, line, tt.expected[i])
				}
			}
		})
	}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", hub.ClientCount(), want)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("match-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "player1")
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.BroadcastEvent("turn-result", "{}")

	select {
	case msg := <-client.send:
		expected := "event: turn-result\ndata: {}\n\n"
		if string(msg) != expected {
			t.Errorf("client received %q, want %q", string(msg), expected)
		}
	case <-time.After(time.Second):
		t.Error("client did not receive message")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub("match-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "player1")
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	if _, ok := <-client.send; ok {
		t.Error("client channel still open after unregister")
	}
}

func TestHub_BroadcastToMultipleClients(t *testing.T) {
	hub := NewHub("match-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	clients := []*Client{
		NewClient(hub, "player1"),
		NewClient(hub, "player2"),
		NewClient(hub, "spectator"),
	}
	for _, c := range clients {
		hub.Register(c)
	}
	waitForClients(t, hub, 3)

	hub.BroadcastEvent("update", "data")

	for i, client := range clients {
		select {
		case msg := <-client.send:
			expected := "event: update\ndata: data\n\n"
			if string(msg) != expected {
				t.Errorf("client %d received %q, want %q", i+1, string(msg), expected)
			}
		case <-time.After(time.Second):
			t.Errorf("client %d did not receive message", i+1)
		}
	}
}

func TestHub_RegisterAfterCloseFails(t *testing.T) {
	hub := NewHub("match-1", testutil.NopLogger())
	go hub.Run()
	hub.Close()
	hub.Close()

	if hub.Register(NewClient(hub, "player1")) {
		t.Error("Register succeeded on a closed hub")
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	hub1 := manager.GetOrCreateHub("match-1")
	if hub1 == nil {
		t.Fatal("GetOrCreateHub returned nil")
	}
	if hub2 := manager.GetOrCreateHub("match-1"); hub1 != hub2 {
		t.Error("GetOrCreateHub returned different hub for same match")
	}
	if hub3 := manager.GetOrCreateHub("match-2"); hub3 == hub1 {
		t.Error("GetOrCreateHub returned same hub for different match")
	}
}

func TestHubManager_GetHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	if hub := manager.GetHub("missing"); hub != nil {
		t.Error("GetHub returned non-nil for non-existent hub")
	}

	created := manager.GetOrCreateHub("match-1")
	if got := manager.GetHub("match-1"); got != created {
		t.Error("GetHub returned different hub than GetOrCreateHub")
	}
}

func TestHubManager_RemoveHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	manager.GetOrCreateHub("match-1")
	manager.RemoveHub("match-1")

	if manager.GetHub("match-1") != nil {
		t.Error("Hub still exists after RemoveHub")
	}

	// Removing non-existent hub should not panic
	manager.RemoveHub("missing")
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	manager.GetOrCreateHub("empty")
	active := manager.GetOrCreateHub("active")
	active.Register(NewClient(active, "player1"))
	waitForClients(t, active, 1)

	if removed := manager.CleanupEmptyHubs(); removed != 1 {
		t.Errorf("CleanupEmptyHubs() = %d, want 1", removed)
	}
	if manager.GetHub("empty") != nil {
		t.Error("Empty hub still exists after cleanup")
	}
	if manager.GetHub("active") == nil {
		t.Error("Active hub was removed during cleanup")
	}
}
