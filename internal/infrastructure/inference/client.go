// Package inference abstracts the chat model backend. The production
// implementation talks to a local Ollama instance; the default mock serves
// deterministic canned replies so the application runs without a model.
package inference

import "context"

// Turn is one entry of an agent's conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Status describes the inference backend's availability.
type Status struct {
	Running         bool     `json:"running"`
	Models          []string `json:"models,omitempty"`
	VisionAvailable bool     `json:"vision_available"`
}

// ErrorFallbackMessage is returned to the user when the backend fails.
// Inference errors never propagate to HTTP responses.
const ErrorFallbackMessage = "I apologize, but I encountered an error while processing your request. Please try again."

type Client interface {
	// Generate produces a reply for the given system prompt and history.
	// The last history turn is the pending user message.
	Generate(ctx context.Context, systemPrompt string, history []Turn) (string, error)

	// GenerateWithImage produces a reply for a message that carries an
	// image attachment stored at imagePath.
	GenerateWithImage(ctx context.Context, systemPrompt string, history []Turn, imagePath string) (string, error)

	// Status probes the backend.
	Status(ctx context.Context) (*Status, error)
}
