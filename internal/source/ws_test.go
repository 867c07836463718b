package source

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// mockRelay creates a test WebSocket server.
func mockRelay(t *testing.T, handler func(*websocket.Conn)) *httptest.Server {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade error: %v", err)
			return
		}
		defer conn.Close()
		handler(conn)
	}))
}

func relayURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func testWSConfig(url string) WSConfig {
	return WSConfig{
		URL:          url,
		PingTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Second,
		BufferSize:   100,
	}
}

func TestWSSource_Connect(t *testing.T) {
	server := mockRelay(t, func(conn *websocket.Conn) {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer server.Close()

	s := NewWSSource(testWSConfig(relayURL(server)), nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !s.IsConnected() {
		t.Error("expected IsConnected to return true")
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if s.IsConnected() {
		t.Error("expected IsConnected to return false after Close")
	}
}

func TestWSSource_BinaryFrames(t *testing.T) {
	frames := [][]byte{
		{0x53, 0x00, 0x00, 0x07, 0x3E, 0xE0, 0x35, 0xAE, 0x45, 0x4F},
		{0x44, 0x00, 0x00, 0x18},
	}

	server := mockRelay(t, func(conn *websocket.Conn) {
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.BinaryMessage, f); err != nil {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		time.Sleep(time.Second)
	})
	defer server.Close()

	s := NewWSSource(testWSConfig(relayURL(server)), nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Close()

	timeout := time.After(500 * time.Millisecond)
	for i, want := range frames {
		select {
		case chunk := <-s.Chunks():
			if !bytes.Equal(chunk.Data, want) {
				t.Errorf("frame %d = %x, want %x", i, chunk.Data, want)
			}
			if chunk.ReceivedAt.IsZero() {
				t.Error("ReceivedAt should not be zero")
			}
		case <-timeout:
			t.Fatalf("timeout waiting for frames, received %d of %d", i, len(frames))
		}
	}
}

func TestWSSource_IgnoresTextFrames(t *testing.T) {
	binary := []byte{0x44, 0x00, 0x00, 0x18}

	server := mockRelay(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"note":"not feed data"}`))
		conn.WriteMessage(websocket.BinaryMessage, binary)
		time.Sleep(time.Second)
	})
	defer server.Close()

	s := NewWSSource(testWSConfig(relayURL(server)), nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Close()

	select {
	case chunk := <-s.Chunks():
		if !bytes.Equal(chunk.Data, binary) {
			t.Errorf("first chunk = %x, want the binary frame %x", chunk.Data, binary)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for binary frame")
	}
}

func TestWSSource_DoubleClose(t *testing.T) {
	server := mockRelay(t, func(conn *websocket.Conn) {
		time.Sleep(time.Second)
	})
	defer server.Close()

	s := NewWSSource(testWSConfig(relayURL(server)), nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWSSource_PingHandler(t *testing.T) {
	server := mockRelay(t, func(conn *websocket.Conn) {
		if err := conn.WriteControl(websocket.PingMessage, []byte("heartbeat"), time.Now().Add(time.Second)); err != nil {
			t.Logf("ping error: %v", err)
			return
		}
		time.Sleep(500 * time.Millisecond)
	})
	defer server.Close()

	s := NewWSSource(testWSConfig(relayURL(server)), nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Close()

	time.Sleep(200 * time.Millisecond)

	if !s.IsConnected() {
		t.Error("expected source to stay connected after ping")
	}
}
