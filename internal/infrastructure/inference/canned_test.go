package inference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedClient_Generate(t *testing.T) {
	client := NewCannedClient("llama3:8b-vision")
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "help request",
			message: "Can you help me?",
			want:    "I'm here to help! As the Fractal Intelligence Coordinator, I can assist with project planning, task management, research, and development support. What would you like to work on today?",
		},
		{
			name:    "project question",
			message: "Tell me about my project",
			want:    cannedProject,
		},
		{
			name:    "task keyword",
			message: "I need a new task for the login page",
			want:    cannedTask,
		},
		{
			name:    "research keyword",
			message: "research database options",
			want:    cannedResearch,
		},
		{
			name:    "develop keyword",
			message: "develop the payment flow",
			want:    cannedDevelop,
		},
		{
			name:    "fallback",
			message: "what is the weather",
			want:    cannedDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []Turn{{Role: RoleUser, Content: tt.message}}
			reply, err := client.Generate(ctx, "system", history)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reply)
		})
	}
}

func TestCannedClient_Generate_EmptyHistory(t *testing.T) {
	client := NewCannedClient("llama3:8b-vision")

	reply, err := client.Generate(context.Background(), "system", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello! I'm the Fractalyx Coordinator. How can I help you today?", reply)
}

func TestCannedClient_Generate_UsesLastUserTurn(t *testing.T) {
	client := NewCannedClient("llama3:8b-vision")

	history := []Turn{
		{Role: RoleUser, Content: "help"},
		{Role: RoleAssistant, Content: "..."},
		{Role: RoleUser, Content: "research caching strategies"},
	}

	reply, err := client.Generate(context.Background(), "system", history)
	require.NoError(t, err)
	assert.Equal(t, cannedResearch, reply)
}

func TestCannedClient_GenerateWithImage(t *testing.T) {
	client := NewCannedClient("llama3:8b-vision")
	ctx := context.Background()

	history := []Turn{{Role: RoleUser, Content: "look at this"}}
	reply, err := client.GenerateWithImage(ctx, "system", history, "/data/uploads/abc_mockup.png")
	require.NoError(t, err)
	assert.Contains(t, reply, "abc_mockup.png")

	reply, err = client.GenerateWithImage(ctx, "system", nil, "/data/uploads/x.png")
	require.NoError(t, err)
	assert.Equal(t, cannedImageGreeting, reply)
}

func TestCannedClient_Status(t *testing.T) {
	client := NewCannedClient("llama3:8b-vision")

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.True(t, status.VisionAvailable)
	assert.Equal(t, []string{"llama3:8b-vision"}, status.Models)
}
