package metrics

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerDefaultsPath(t *testing.T) {
	s := NewServer(":9091", "")
	assert.Equal(t, "/metrics", s.path)
}

func TestScrapeServesCounters(t *testing.T) {
	FramesTotal.Inc()

	s := NewServer(":9091", "/metrics")
	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "cigiscope_frames_total")
}

func TestStartStop(t *testing.T) {
	s := NewServer("127.0.0.1:0", "")
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	assert.NoError(t, s.Stop(ctx))
}
