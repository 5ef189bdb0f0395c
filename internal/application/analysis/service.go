// Package analysis turns raw classifier answers into validated ticket
// analyses, substituting a fixed fallback whenever anything goes wrong.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

const defaultTimeout = 30 * time.Second

type Service struct {
	classifier ticket.Classifier
	timeout    time.Duration
	logger     logger.Interface
}

func NewService(classifier ticket.Classifier, timeout time.Duration, logger logger.Interface) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		classifier: classifier,
		timeout:    timeout,
		logger:     logger,
	}
}

// Classify never fails. Transport errors, timeouts and answers that do not
// satisfy the schema all produce ticket.FallbackAnalysis.
func (s *Service) Classify(ctx context.Context, model, title, description string) ticket.Analysis {
	if s.classifier == nil {
		s.logger.Warnw("no classifier configured, using fallback analysis")
		return ticket.FallbackAnalysis()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.classifier.Classify(ctx, model, title, description)
	if err != nil {
		s.logger.Warnw("ticket classification failed, using fallback", "error", err, "model", model)
		return ticket.FallbackAnalysis()
	}

	result, err := validate(raw)
	if err != nil {
		s.logger.Warnw("ticket classification rejected, using fallback", "error", err, "model", model)
		return ticket.FallbackAnalysis()
	}

	s.logger.Debugw("ticket classified",
		"priority", result.Priority,
		"category", result.Category,
		"sentiment", result.Sentiment,
	)
	return result
}

func validate(raw *ticket.Classification) (ticket.Analysis, error) {
	if raw == nil {
		return ticket.Analysis{}, fmt.Errorf("empty classification")
	}

	priority, err := vo.ParsePriority(raw.Priority)
	if err != nil {
		return ticket.Analysis{}, fmt.Errorf("priority %q: %w", raw.Priority, err)
	}

	category := strings.TrimSpace(raw.Category)
	summary := strings.TrimSpace(raw.Summary)
	sentiment := strings.TrimSpace(raw.Sentiment)
	switch {
	case category == "":
		return ticket.Analysis{}, fmt.Errorf("category is empty")
	case summary == "":
		return ticket.Analysis{}, fmt.Errorf("summary is empty")
	case sentiment == "":
		return ticket.Analysis{}, fmt.Errorf("sentiment is empty")
	}

	return ticket.Analysis{
		Priority:  priority,
		Category:  normalizeLabel(category),
		Summary:   summary,
		Sentiment: normalizeLabel(sentiment),
	}, nil
}

// normalizeLabel title-cases labels the model returned entirely in lower
// case and leaves anything else (acronyms, mixed case) alone.
func normalizeLabel(s string) string {
	if s != strings.ToLower(s) {
		return s
	}
	return cases.Title(language.English).String(s)
}
