// Package enricher sends the single chat completion request of an enricher
// run and reports its outcome.
package enricher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ohadschn/igdb-enricher/pkg/config"
	"github.com/ohadschn/igdb-enricher/pkg/logger"
)

// Result is the assistant reply of a completed run.
type Result struct {
	ID      string
	Model   string
	Content string
}

// Service executes exactly one chat completion request.
type Service struct {
	opts       config.EnricherOptions
	logger     *slog.Logger
	httpClient *http.Client
	state      atomic.Int32
}

// New builds a Service for opts.
func New(opts config.EnricherOptions, options ...Option) *Service {
	deps := serviceDeps{logger: logger.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(&deps)
		}
	}
	if deps.logger == nil {
		deps.logger = logger.Nop()
	}

	return &Service{
		opts:       opts,
		logger:     deps.logger,
		httpClient: deps.httpClient,
	}
}

// State reports where the service is in its lifecycle.
func (s *Service) State() State {
	return State(s.state.Load())
}

// Run sends the request and waits for the reply or for ctx to be cancelled.
// The reply is logged on success. Failures are never retried.
func (s *Service) Run(ctx context.Context) (Result, error) {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRequesting)) {
		return Result{}, ErrAlreadyRun
	}
	if ctx == nil {
		ctx = context.Background()
	}

	httpClient := s.httpClient
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		defer transport.CloseIdleConnections()
		httpClient = &http.Client{Transport: transport}
	}
	client := newOpenAIClient(s.opts, httpClient)

	s.logger.Debug("sending chat completion request",
		"endpoint", s.opts.Endpoint().String(),
		"model", s.opts.Model(),
	)
	completion, err := client.Chat.Completions.New(ctx, s.newChatParams())
	if err != nil {
		if ctx.Err() != nil {
			s.state.Store(int32(StateCancelled))
			s.logger.Warn("chat completion request cancelled")
			return Result{}, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
		s.state.Store(int32(StateFailed))
		return Result{}, newRequestFailure(err)
	}
	if len(completion.Choices) == 0 {
		s.state.Store(int32(StateFailed))
		return Result{}, &RequestFailure{Err: errors.New("empty completion choices")}
	}

	result := Result{
		ID:      completion.ID,
		Model:   completion.Model,
		Content: completion.Choices[0].Message.Content,
	}
	s.state.Store(int32(StateCompleted))
	s.logger.Info("[ASSISTANT]", "content", result.Content)
	return result, nil
}

func (s *Service) newChatParams() openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.opts.Model()),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(s.opts.Prompt()),
		},
	}
}

func newOpenAIClient(opts config.EnricherOptions, httpClient *http.Client) openai.Client {
	return openai.NewClient(
		option.WithBaseURL(opts.Endpoint().String()),
		option.WithAPIKey(opts.APIKey()),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)
}

func newRequestFailure(err error) *RequestFailure {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &RequestFailure{StatusCode: apiErr.StatusCode, Err: err}
	}
	return &RequestFailure{Err: err}
}
