package inference

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// CannedClient is the default inference backend. It serves fixed replies
// keyed on the last user message so the full chat flow works offline.
type CannedClient struct {
	model string
}

func NewCannedClient(model string) *CannedClient {
	return &CannedClient{model: model}
}

const (
	cannedGreeting = "Hello! I'm the Fractalyx Coordinator. How can I help you today?"

	cannedHelp = "I'm here to help! As the Fractal Intelligence Coordinator, I can assist with project planning, task management, research, and development support. What would you like to work on today?"

	cannedProject = "I'd be happy to help with your project! To get started, I'll need to understand your goals. Could you tell me more about what you're trying to build, and what your key requirements are?"

	cannedTask = "Creating tasks is a great way to organize your project. Each task should be specific, measurable, and have a clear definition of done. Would you like me to help you break down your project into manageable tasks?"

	cannedResearch = "Research is crucial for informed decisions. I can help gather information on technologies, methodologies, or industry trends related to your project. What specific topic would you like me to research?"

	cannedDevelop = "For development work, I can help plan the architecture, suggest technologies, and even generate code snippets. What are you trying to build?"

	cannedDefault = "I've received your message. As your Fractal Intelligence Coordinator, I'm here to help with any aspect of your project. Could you provide more specific details about what you're working on, so I can offer more targeted assistance?"

	cannedImageGreeting = "I can see you've shared an image with me. How can I help with this?"
)

func (c *CannedClient) Generate(ctx context.Context, systemPrompt string, history []Turn) (string, error) {
	last, ok := lastUserTurn(history)
	if !ok {
		return cannedGreeting, nil
	}

	msg := strings.ToLower(last.Content)

	switch {
	case strings.Contains(msg, "help"):
		return cannedHelp, nil
	case strings.Contains(msg, "project") || strings.Contains(msg, "plan"):
		return cannedProject, nil
	case strings.Contains(msg, "task") || strings.Contains(msg, "ticket"):
		return cannedTask, nil
	case strings.Contains(msg, "research"):
		return cannedResearch, nil
	case strings.Contains(msg, "code") || strings.Contains(msg, "develop"):
		return cannedDevelop, nil
	default:
		return cannedDefault, nil
	}
}

func (c *CannedClient) GenerateWithImage(ctx context.Context, systemPrompt string, history []Turn, imagePath string) (string, error) {
	if _, ok := lastUserTurn(history); !ok {
		return cannedImageGreeting, nil
	}

	filename := filepath.Base(imagePath)
	return fmt.Sprintf("I've received your image '%s'. As your Fractal Intelligence Coordinator, I can analyze this visual information to assist with your project. Could you tell me more about what you'd like me to do with this image?", filename), nil
}

func (c *CannedClient) Status(ctx context.Context) (*Status, error) {
	return &Status{
		Running:         true,
		Models:          []string{c.model},
		VisionAvailable: true,
	}, nil
}

// lastUserTurn returns the most recent user turn before the pending one.
// History with no completed user turn yields the greeting flow.
func lastUserTurn(history []Turn) (Turn, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i], true
		}
	}
	return Turn{}, false
}
