package ticket

import (
	"context"

	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
)

const (
	FallbackCategory  = "Uncategorized"
	FallbackSummary   = "Analysis failed, please review manually."
	FallbackSentiment = "Unknown"
)

// Classification is the raw structured answer returned by a classifier,
// before any validation.
type Classification struct {
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

// Classifier asks an external model to triage an incident.
type Classifier interface {
	Classify(ctx context.Context, model, title, description string) (*Classification, error)
}

// Analysis is a validated classification.
type Analysis struct {
	Priority  vo.Priority
	Category  string
	Summary   string
	Sentiment string
}

// FallbackAnalysis is returned whenever classification fails in any way.
func FallbackAnalysis() Analysis {
	return Analysis{
		Priority:  vo.PriorityMedium,
		Category:  FallbackCategory,
		Summary:   FallbackSummary,
		Sentiment: FallbackSentiment,
	}
}

func (a Analysis) IsFallback() bool {
	return a == FallbackAnalysis()
}

func (a Analysis) Triage() Triage {
	return Triage{
		Priority: a.Priority,
		Category: a.Category,
		Summary:  a.Summary,
	}
}

// DefaultTriage is used when automatic categorization is switched off.
func DefaultTriage(priority vo.Priority) Triage {
	return Triage{
		Priority: priority,
		Category: DefaultCategory,
	}
}
