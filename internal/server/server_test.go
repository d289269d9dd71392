package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vmihailenco/msgpack/v5"

	"boomgates/internal/game"
)

func TestWebSocketRoundTrip(t *testing.T) {
	w, _ := newTestWorld(t)
	srv := httptest.NewServer(NewServer(w, t.TempDir()).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read constants: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("message kind = %d, want binary", kind)
	}
	var constants ConstantsMsg
	if err := msgpack.Unmarshal(data, &constants); err != nil {
		t.Fatalf("decode constants: %v", err)
	}
	if constants.Type != MsgTypeConstants || constants.Constants.WindowWidth != game.WindowWidth {
		t.Fatalf("constants = %+v", constants)
	}

	if err := conn.WriteJSON(InputMsg{Type: MsgTypeKeyDown, Key: "ArrowLeft"}); err != nil {
		t.Fatalf("write input: %v", err)
	}

	// The input lands asynchronously; keep stepping until the player moves
	for i := 0; i < 200; i++ {
		w.Step()
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read snapshot: %v", err)
		}
		var msg SnapshotMsg
		if err := msgpack.Unmarshal(data, &msg); err != nil {
			t.Fatalf("decode snapshot: %v", err)
		}
		if msg.Snapshot.Entities[0].X < game.WindowWidth/2 {
			return
		}
	}
	t.Fatalf("player never moved left")
}

func TestDisconnectRemovesClient(t *testing.T) {
	w, m := newTestWorld(t)
	srv := httptest.NewServer(NewServer(w, t.TempDir()).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		w.mu.Lock()
		n := len(w.clients)
		w.mu.Unlock()
		if n == 0 {
			if got := testutil.ToFloat64(m.Clients); got != 0 {
				t.Fatalf("clients gauge = %v, want 0", got)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("client still registered after disconnect")
}

func TestServesStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<canvas></canvas>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	w, _ := newTestWorld(t)
	srv := httptest.NewServer(NewServer(w, dir).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
