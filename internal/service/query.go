package service

import (
	"context"
	"errors"
	"time"

	"github.com/cloo-solutions/krishisahay/internal/domain"
	"github.com/cloo-solutions/krishisahay/internal/metrics"
	"github.com/cloo-solutions/krishisahay/internal/telemetry"
	"go.uber.org/zap"
)

// SystemPrompt sets the persona and domain scope for AI answers.
const SystemPrompt = "You are KrishiSahay AI, an expert agricultural assistant helping farmers with crops, pests, fertilizers, irrigation, and government schemes. Give simple and practical answers."

var errCompletionUnavailable = errors.New("completion service not configured")

// KnowledgeLookup finds an offline answer for a query
type KnowledgeLookup interface {
	Search(query string) (string, bool)
}

// CompletionService generates an answer for a question the knowledge base
// cannot serve
type CompletionService interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// QueryService answers questions offline first and falls back to the
// completion service on a miss
type QueryService struct {
	lookup    KnowledgeLookup
	completer CompletionService
	recorder  *metrics.Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewQueryService creates a new QueryService instance
func NewQueryService(lookup KnowledgeLookup, completer CompletionService, recorder *metrics.Recorder, logger *zap.Logger) *QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryService{
		lookup:    lookup,
		completer: completer,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle answers a single question. It returns domain.ErrQuestionRequired for
// an empty question and an error matching domain.ErrUpstream when the
// completion call fails. No retry is attempted.
func (s *QueryService) Handle(ctx context.Context, question string) (*domain.Answer, error) {
	if question == "" {
		s.recorder.ObserveError(domain.ErrCodeValidation)
		return nil, domain.ErrQuestionRequired
	}

	ctx, span := telemetry.StartSpan(ctx, "QueryService.Handle", telemetry.SpanAttributes{
		Operation: "query",
	})
	defer span.End()

	if answer, ok := s.lookup.Search(question); ok {
		span.SetSource(string(domain.SourceOffline))
		s.recorder.ObserveAnswer(string(domain.SourceOffline))
		return domain.NewOfflineAnswer(answer), nil
	}

	text, err := s.complete(ctx, question)
	if err != nil {
		upstreamErr := domain.NewUpstreamError(err)
		span.SetError(upstreamErr)
		telemetry.CaptureError(ctx, upstreamErr)
		s.recorder.ObserveError(domain.ErrorCode(upstreamErr))
		s.logger.Error("completion request failed", zap.Error(err))
		return nil, upstreamErr
	}

	span.SetSource(string(domain.SourceAI))
	s.recorder.ObserveAnswer(string(domain.SourceAI))
	return domain.NewAIAnswer(text), nil
}

func (s *QueryService) complete(ctx context.Context, question string) (string, error) {
	if s.completer == nil {
		return "", errCompletionUnavailable
	}

	ctx, span := telemetry.StartSpan(ctx, "CompletionService.Complete", telemetry.SpanAttributes{
		Operation: "completion",
		Source:    string(domain.SourceAI),
	})
	defer span.End()

	start := s.now()
	text, err := s.completer.Complete(ctx, SystemPrompt, question)
	s.recorder.ObserveCompletion(s.now().Sub(start))
	return text, err
}
