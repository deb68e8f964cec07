// Package enrichertest provides a fake OpenAI-compatible chat endpoint for tests.
package enrichertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// Request is the part of a chat completion request the fake records.
type Request struct {
	Authorization string    `json:"-"`
	Path          string    `json:"-"`
	Model         string    `json:"model"`
	Messages      []Message `json:"messages"`
}

// Message is one recorded chat message.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// Server mimics the chat completions endpoint. Count tracks how many
// requests it received.
type Server struct {
	*httptest.Server

	Count atomic.Int64

	// Received is signalled once per request before the reply is written.
	Received chan struct{}

	mu       sync.Mutex
	requests []Request
	reply    string
	status   int
	hold     chan struct{}
	empty    bool
}

// Option configures a Server.
type Option func(*Server)

// WithReply sets the assistant reply text.
func WithReply(text string) Option {
	return func(s *Server) { s.reply = text }
}

// WithStatus makes every request fail with status.
func WithStatus(status int) Option {
	return func(s *Server) { s.status = status }
}

// WithNoChoices returns a completion without any choices.
func WithNoChoices() Option {
	return func(s *Server) { s.empty = true }
}

// WithHold blocks every request until the client goes away.
func WithHold() Option {
	return func(s *Server) { s.hold = make(chan struct{}) }
}

// NewServer starts a fake chat endpoint closed at test cleanup.
func NewServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		Received: make(chan struct{}, 16),
		reply:    "this is a test.",
		status:   http.StatusOK,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(func() {
		if s.hold != nil {
			close(s.hold)
		}
		s.Server.Close()
	})
	return s
}

// BaseURL is the endpoint to configure the client with.
func (s *Server) BaseURL() string {
	return s.URL + "/v1/"
}

// Requests returns the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.Count.Add(1)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.Authorization = r.Header.Get("Authorization")
	req.Path = r.URL.Path

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	select {
	case s.Received <- struct{}{}:
	default:
	}

	if s.hold != nil {
		select {
		case <-r.Context().Done():
		case <-s.hold:
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if s.status != http.StatusOK {
		w.WriteHeader(s.status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "upstream failure",
				"type":    "server_error",
			},
		})
		return
	}

	choices := []map[string]any{
		{
			"index":         0,
			"finish_reason": "stop",
			"message": map[string]any{
				"role":    "assistant",
				"content": s.reply,
			},
		},
	}
	if s.empty {
		choices = []map[string]any{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   req.Model,
		"choices": choices,
	})
}
