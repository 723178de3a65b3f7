package log

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type lokiPush struct {
	Streams []struct {
		Stream map[string]string `json:"stream"`
		Values [][2]string       `json:"values"`
	} `json:"streams"`
}

// lokiServer records every push it receives.
type lokiServer struct {
	mu     sync.Mutex
	pushes []lokiPush
	fail   int // fail this many requests before accepting
}

func (s *lokiServer) handler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail > 0 {
		s.fail--
		http.Error(w, "try later", http.StatusServiceUnavailable)
		return
	}
	var p lokiPush
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.pushes = append(s.pushes, p)
	w.WriteHeader(http.StatusNoContent)
}

func (s *lokiServer) pushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pushes)
}

func TestLokiWriterDefaults(t *testing.T) {
	lw, err := NewLokiWriter(LokiConfig{Endpoint: "http://localhost:3100/loki/api/v1/push"})
	if err != nil {
		t.Fatalf("NewLokiWriter failed: %v", err)
	}
	defer lw.Close()

	if lw.limit != lokiDefaultBatch {
		t.Errorf("default batch size = %d, want %d", lw.limit, lokiDefaultBatch)
	}
	if lw.stream["job"] != "cigiscope" {
		t.Errorf("default job label = %q, want cigiscope", lw.stream["job"])
	}
	if lw.stream["component"] != "dissector" {
		t.Errorf("default component label = %q, want dissector", lw.stream["component"])
	}
}

func TestLokiWriterUserLabelsLayerOnDefaults(t *testing.T) {
	lw, err := NewLokiWriter(LokiConfig{
		Endpoint: "http://localhost:3100/loki/api/v1/push",
		Labels:   map[string]string{"env": "sim-lab", "job": "override"},
	})
	if err != nil {
		t.Fatalf("NewLokiWriter failed: %v", err)
	}
	defer lw.Close()

	if lw.stream["env"] != "sim-lab" {
		t.Errorf("user label env = %q, want sim-lab", lw.stream["env"])
	}
	if lw.stream["job"] != "override" {
		t.Errorf("user label should win: job = %q", lw.stream["job"])
	}
}

func TestLokiWriterRejectsBadFlushInterval(t *testing.T) {
	_, err := NewLokiWriter(LokiConfig{
		Endpoint:      "http://localhost:3100/loki/api/v1/push",
		FlushInterval: "sometimes",
	})
	if err == nil {
		t.Fatal("expected error for bad flush interval")
	}
}

func TestLokiWriterPushesFullBatch(t *testing.T) {
	srv := &lokiServer{}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	lw, err := NewLokiWriter(LokiConfig{
		Endpoint:      ts.URL,
		BatchSize:     2,
		FlushInterval: "1h", // only the batch limit should trigger
	})
	if err != nil {
		t.Fatalf("NewLokiWriter failed: %v", err)
	}
	defer lw.Close()

	for _, line := range []string{"first\n", "second\n"} {
		if _, err := lw.Write([]byte(line)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if srv.pushCount() != 1 {
		t.Fatalf("push count = %d, want 1", srv.pushCount())
	}
	srv.mu.Lock()
	defer srv.mu.Unlock()
	values := srv.pushes[0].Streams[0].Values
	if len(values) != 2 || values[0][1] != "first\n" || values[1][1] != "second\n" {
		t.Errorf("unexpected batch values: %v", values)
	}
	if srv.pushes[0].Streams[0].Stream["job"] != "cigiscope" {
		t.Errorf("stream labels missing job: %v", srv.pushes[0].Streams[0].Stream)
	}
}

func TestLokiWriterCloseFlushesRemainder(t *testing.T) {
	srv := &lokiServer{}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	lw, err := NewLokiWriter(LokiConfig{Endpoint: ts.URL, BatchSize: 100, FlushInterval: "1h"})
	if err != nil {
		t.Fatalf("NewLokiWriter failed: %v", err)
	}
	if _, err := lw.Write([]byte("tail entry\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := lw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if srv.pushCount() != 1 {
		t.Fatalf("push count after Close = %d, want 1", srv.pushCount())
	}
	if _, err := lw.Write([]byte("late\n")); err == nil {
		t.Error("expected error writing after Close")
	}
	if err := lw.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestLokiWriterRetriesTransientFailures(t *testing.T) {
	srv := &lokiServer{fail: 2}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	lw, err := NewLokiWriter(LokiConfig{Endpoint: ts.URL, BatchSize: 1, FlushInterval: "1h"})
	if err != nil {
		t.Fatalf("NewLokiWriter failed: %v", err)
	}
	if _, err := lw.Write([]byte("stubborn\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := lw.Close(); err != nil {
		t.Errorf("push should have recovered on retry, got %v", err)
	}
	if srv.pushCount() != 1 {
		t.Errorf("push count = %d, want 1", srv.pushCount())
	}
}

func TestLokiWriterSurfacesPushErrorOnClose(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusInternalServerError)
	}))
	defer ts.Close()

	lw, err := NewLokiWriter(LokiConfig{Endpoint: ts.URL, BatchSize: 1, FlushInterval: "1h"})
	if err != nil {
		t.Fatalf("NewLokiWriter failed: %v", err)
	}
	if _, err := lw.Write([]byte("doomed\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := lw.Close(); err == nil {
		t.Error("expected Close to report the failed push")
	}
}

func TestLokiWriterPeriodicFlush(t *testing.T) {
	srv := &lokiServer{}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	lw, err := NewLokiWriter(LokiConfig{Endpoint: ts.URL, BatchSize: 100, FlushInterval: "20ms"})
	if err != nil {
		t.Fatalf("NewLokiWriter failed: %v", err)
	}
	defer lw.Close()

	if _, err := lw.Write([]byte("ticked\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for srv.pushCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if srv.pushCount() == 0 {
		t.Fatal("flusher never pushed the partial batch")
	}
}
