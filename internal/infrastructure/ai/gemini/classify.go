package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nexus-desk/nexus/internal/domain/ticket"
	vo "github.com/nexus-desk/nexus/internal/domain/ticket/valueobjects"
)

var _ ticket.Classifier = (*Client)(nil)

func classificationSchema() *schema {
	priorities := make([]string, 0, len(vo.AllPriorities()))
	for _, p := range vo.AllPriorities() {
		priorities = append(priorities, p.String())
	}

	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"priority": {
				Type:        "STRING",
				Description: "Must be LOW, MEDIUM, HIGH, or URGENT",
				Enum:        priorities,
			},
			"category": {
				Type:        "STRING",
				Description: "e.g., Technical, Billing, Security, Feature Request, Bug",
			},
			"summary": {
				Type:        "STRING",
				Description: "A short 1-sentence summary of the issue.",
			},
			"sentiment": {
				Type:        "STRING",
				Description: "Customer sentiment: Positive, Neutral, Negative, or Frustrated",
			},
		},
		Required: []string{"priority", "category", "summary", "sentiment"},
	}
}

func classificationPrompt(title, description string) string {
	return fmt.Sprintf("Analyze this support ticket incident:\nTitle: %s\nDescription: %s", title, description)
}

// Classify asks the model for a structured triage of the incident. The raw
// answer is returned unvalidated.
func (c *Client) Classify(ctx context.Context, model, title, description string) (*ticket.Classification, error) {
	req := generateRequest{
		Contents: []content{textContent("user", classificationPrompt(title, description))},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   classificationSchema(),
		},
	}

	resp, err := c.do(ctx, c.endpoint(model, "generateContent", nil), req, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var wire generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("gemini: decoding response: %w", err)
	}
	if wire.PromptFeedback != nil && wire.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("gemini: prompt blocked: %s", wire.PromptFeedback.BlockReason)
	}

	text := strings.TrimSpace(wire.text())
	if text == "" {
		return nil, fmt.Errorf("gemini: empty classification response")
	}

	var result ticket.Classification
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("gemini: classification is not valid JSON: %w", err)
	}

	c.logger.Debugw("classification received", "model", model, "priority", result.Priority)
	return &result, nil
}
