package api

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogObserver_WritesCall(t *testing.T) {
	var buf bytes.Buffer
	obs := NewSlogObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.OnCallComplete(CallEvent{Method: "GET", Path: "/api/checklist", Status: 200, LatencyMs: 7, RequestID: "req-1"})
	obs.OnCallComplete(CallEvent{Method: "PUT", Path: "/api/checklist/1/item/2", Status: 500, RequestID: "req-2", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=api_call method=GET path=/api/checklist status=200 latency_ms=7 request_id=req-1")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "request_id=req-2 error=boom")
}
