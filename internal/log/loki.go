// Package log implements structured logging outputs.
package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// LokiConfig contains configuration for the Loki writer.
type LokiConfig struct {
	Endpoint      string            // Loki push endpoint URL
	Labels        map[string]string // Stream labels
	BatchSize     int               // Entries per push
	FlushInterval string            // Flush interval (e.g., "5s")
}

const (
	lokiDefaultBatch = 100
	lokiDefaultFlush = 5 * time.Second
	lokiPushTimeout  = 10 * time.Second
	lokiMaxAttempts  = 3
)

// LokiWriter implements io.Writer and ships log lines to Grafana Loki
// in batches. Each line is stamped on arrival; a background ticker
// flushes partial batches. Push failures are retried with backoff and
// the last one is surfaced on Close, never to the writing logger.
type LokiWriter struct {
	endpoint string
	stream   map[string]string
	limit    int
	client   *http.Client

	mu      sync.Mutex
	pending []lokiValue
	pushErr error
	closed  bool

	done chan struct{}
	wg   sync.WaitGroup
}

// lokiValue is one [nanosecond-timestamp, line] pair of the push API.
type lokiValue [2]string

// NewLokiWriter creates a Loki writer and starts its flusher.
func NewLokiWriter(cfg LokiConfig) (*LokiWriter, error) {
	flush := lokiDefaultFlush
	if cfg.FlushInterval != "" {
		d, err := time.ParseDuration(cfg.FlushInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid flush interval: %w", err)
		}
		flush = d
	}

	limit := cfg.BatchSize
	if limit <= 0 {
		limit = lokiDefaultBatch
	}

	// The dissector's identity rides on the stream: operators filter
	// on job/component, user labels layer on top.
	stream := map[string]string{
		"job":       "cigiscope",
		"component": "dissector",
	}
	for k, v := range cfg.Labels {
		stream[k] = v
	}

	lw := &LokiWriter{
		endpoint: cfg.Endpoint,
		stream:   stream,
		limit:    limit,
		client:   &http.Client{Timeout: lokiPushTimeout},
		pending:  make([]lokiValue, 0, limit),
		done:     make(chan struct{}),
	}

	lw.wg.Add(1)
	go lw.run(flush)
	return lw, nil
}

// Write stamps one log line and queues it, pushing when the batch is
// full. It never blocks on the network beyond a full-batch push.
func (lw *LokiWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.closed {
		return 0, fmt.Errorf("loki writer is closed")
	}

	ns := strconv.FormatInt(time.Now().UnixNano(), 10)
	lw.pending = append(lw.pending, lokiValue{ns, string(p)})
	if len(lw.pending) >= lw.limit {
		lw.flushLocked()
	}
	return len(p), nil
}

// Close pushes the remaining batch, stops the flusher and returns the
// last push failure, if any.
func (lw *LokiWriter) Close() error {
	lw.mu.Lock()
	if lw.closed {
		lw.mu.Unlock()
		return nil
	}
	lw.closed = true
	lw.flushLocked()
	err := lw.pushErr
	lw.mu.Unlock()

	close(lw.done)
	lw.wg.Wait()
	return err
}

func (lw *LokiWriter) run(flush time.Duration) {
	defer lw.wg.Done()

	tick := time.NewTicker(flush)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			lw.mu.Lock()
			if !lw.closed {
				lw.flushLocked()
			}
			lw.mu.Unlock()
		case <-lw.done:
			return
		}
	}
}

// flushLocked pushes the pending batch. Must hold lw.mu. The batch is
// dropped whether or not the push succeeds; a writer that grows its
// queue on a dead endpoint would eventually take the process with it.
func (lw *LokiWriter) flushLocked() {
	if len(lw.pending) == 0 {
		return
	}

	body, err := json.Marshal(map[string]any{
		"streams": []map[string]any{
			{"stream": lw.stream, "values": lw.pending},
		},
	})
	lw.pending = lw.pending[:0]
	if err != nil {
		lw.pushErr = fmt.Errorf("failed to marshal loki push: %w", err)
		return
	}

	lw.pushErr = lw.push(body)
}

// push POSTs one batch, retrying transient failures with exponential
// backoff.
func (lw *LokiWriter) push(body []byte) error {
	var lastErr error
	backoff := 100 * time.Millisecond

	for attempt := 0; attempt < lokiMaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		ctx, cancel := context.WithTimeout(context.Background(), lokiPushTimeout)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, lw.endpoint, bytes.NewReader(body))
		if err != nil {
			cancel()
			return fmt.Errorf("failed to build loki request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := lw.client.Do(req)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}

		status := resp.StatusCode
		var detail []byte
		if status < 200 || status >= 300 {
			detail, _ = io.ReadAll(resp.Body)
		}
		resp.Body.Close()

		if status >= 200 && status < 300 {
			return nil
		}
		lastErr = fmt.Errorf("status %d: %s", status, detail)
	}

	return fmt.Errorf("loki push failed after %d attempts: %w", lokiMaxAttempts, lastErr)
}
