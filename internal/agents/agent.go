package agents

import (
	"context"

	"fractalyx/internal/domain/agent"
	"fractalyx/internal/infrastructure/inference"
	"fractalyx/internal/shared/logger"
)

// Agent is the runtime wrapper around a persisted agent row. It keeps an
// append-only conversation context and forwards turns to the inference
// client with its role prompt.
//
// An Agent is not safe for concurrent use; the coordinator constructs a
// fresh set per request.
type Agent struct {
	id           uint
	name         string
	role         agent.Role
	model        string
	systemPrompt string
	client       inference.Client
	context      []inference.Turn
	logger       logger.Interface
}

func NewRuntimeAgent(entity *agent.Agent, client inference.Client) *Agent {
	return &Agent{
		id:           entity.ID(),
		name:         entity.Name(),
		role:         entity.Role(),
		model:        entity.Model(),
		systemPrompt: SystemPrompt(entity.Name(), entity.Role()),
		client:       client,
		logger:       logger.NewLogger().With("component", "agents.runtime", "agent", entity.Name()),
	}
}

func (a *Agent) ID() uint {
	return a.id
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Role() agent.Role {
	return a.role
}

// Process appends the message to the agent's context, generates a reply and
// records it. Inference failures degrade to a fixed apology so chat turns
// always produce a response.
func (a *Agent) Process(ctx context.Context, message string, imagePath string) string {
	a.context = append(a.context, inference.Turn{Role: inference.RoleUser, Content: message})

	var reply string
	var err error
	if imagePath != "" {
		reply, err = a.client.GenerateWithImage(ctx, a.systemPrompt, a.context, imagePath)
	} else {
		reply, err = a.client.Generate(ctx, a.systemPrompt, a.context)
	}

	if err != nil {
		a.logger.Errorw("inference failed", "role", a.role.String(), "error", err)
		reply = inference.ErrorFallbackMessage
	}

	a.context = append(a.context, inference.Turn{Role: inference.RoleAssistant, Content: reply})

	return reply
}

// Reset clears the conversation context.
func (a *Agent) Reset() {
	a.context = nil
}

// Context returns a copy of the accumulated turns.
func (a *Agent) Context() []inference.Turn {
	out := make([]inference.Turn, len(a.context))
	copy(out, a.context)
	return out
}

// LoadContext primes the agent with previously persisted turns.
func (a *Agent) LoadContext(turns []inference.Turn) {
	a.context = append(a.context[:0], turns...)
}
