// Package assistant holds the chat transcript model and the contract the
// streaming chat provider implements.
package assistant

import (
	"context"
	"time"
)

const (
	Greeting = "Hello! I am your AI Support Specialist. Describe the technical issue you are facing, and I will help you troubleshoot it step-by-step."

	ErrorReply = "Sorry, I encountered an error processing your request. Please try again."

	SystemInstruction = "You are an expert enterprise IT support specialist. Your goal is to help users troubleshoot technical issues effectively. Be professional, technical but accessible, and prioritize safety. If an issue seems critical or unresolved after a few steps, suggest creating an official support ticket."
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of a transcript.
type Turn struct {
	Role      Role
	Text      string
	Timestamp time.Time
	// Failed marks the user message and error reply of an exchange the
	// provider did not complete. Failed turns stay visible but are never
	// replayed to the provider.
	Failed bool
}

func GreetingTurn(at time.Time) Turn {
	return Turn{Role: RoleModel, Text: Greeting, Timestamp: at}
}

// ChatRequest is one provider call: the prior history plus the new message.
type ChatRequest struct {
	Model             string
	SystemInstruction string
	History           []Turn
	Message           string
}

// ChunkStream yields incremental reply text. Next returns io.EOF once the
// provider has finished. Close releases the underlying connection and is
// safe to call more than once.
type ChunkStream interface {
	Next() (string, error)
	Close() error
}

type ChatProvider interface {
	StreamChat(ctx context.Context, req ChatRequest) (ChunkStream, error)
}

// ProviderHistory returns the turns that may be replayed to the provider.
func ProviderHistory(turns []Turn) []Turn {
	history := make([]Turn, 0, len(turns))
	for _, t := range turns {
		if t.Failed || t.Text == "" {
			continue
		}
		history = append(history, t)
	}
	return history
}
