package agents

import (
	"context"
	"fmt"
	"time"

	"fractalyx/internal/domain/agent"
	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/domain/ticket"
	vo "fractalyx/internal/domain/ticket/valueobjects"
	"fractalyx/internal/infrastructure/inference"
	"fractalyx/internal/shared/db"
	apperrors "fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// ticketTitleRunes caps how much of a user message becomes a ticket title
// when the intent scan triggers ticket creation.
const ticketTitleRunes = 100

// Deps collects everything a Coordinator needs. All repository access goes
// through the interfaces so the coordinator is testable without a database.
type Deps struct {
	Agents        agent.Repository
	Tickets       ticket.TicketRepository
	Checkpoints   checkpoint.Repository
	Conversations conversation.Repository
	Messages      conversation.MessageRepository
	TxManager     *db.TransactionManager
	Client        inference.Client
	Classifier    Classifier
	Logger        logger.Interface
}

// Coordinator routes user messages to the coordinator-role agent and scans
// the exchange for project actions. A Coordinator is scoped to one project
// and built per request; runtime agent context is rebuilt from persisted
// messages, never shared across requests.
type Coordinator struct {
	projectID   uint
	agents      map[uint]*Agent
	coordinator *Agent
	deps        Deps
	logger      logger.Interface
}

func NewCoordinator(ctx context.Context, projectID uint, deps Deps) (*Coordinator, error) {
	if deps.Classifier == nil {
		deps.Classifier = NewKeywordClassifier()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewLogger().With("component", "agents.coordinator")
	}

	c := &Coordinator{
		projectID: projectID,
		agents:    make(map[uint]*Agent),
		deps:      deps,
		logger:    deps.Logger.With("project_id", projectID),
	}

	if err := c.loadAgents(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Coordinator) loadAgents(ctx context.Context) error {
	count, err := c.deps.Agents.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count agents: %w", err)
	}

	if count == 0 {
		c.logger.Info("no agents found, creating default agents")
		if err := c.createDefaultAgents(ctx); err != nil {
			return err
		}
	}

	entities, err := c.deps.Agents.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load agents: %w", err)
	}

	for _, entity := range entities {
		runtime := NewRuntimeAgent(entity, c.deps.Client)
		c.agents[entity.ID()] = runtime

		if entity.Role() == agent.RoleCoordinator && c.coordinator == nil {
			c.coordinator = runtime
		}
	}

	if c.coordinator == nil {
		return fmt.Errorf("no coordinator agent found")
	}

	return nil
}

var defaultAgentNames = map[agent.Role]string{
	agent.RoleCoordinator: "Alice",
	agent.RolePlanner:     "Bob",
	agent.RoleResearcher:  "Charlie",
	agent.RoleDeveloper:   "Diana",
	agent.RoleTester:      "Eve",
	agent.RoleReviewer:    "Frank",
}

func (c *Coordinator) createDefaultAgents(ctx context.Context) error {
	for _, role := range agent.AllRoles() {
		entity, err := agent.NewAgent(
			defaultAgentNames[role],
			role,
			fmt.Sprintf("Default %s agent", role),
			agent.DefaultModel,
		)
		if err != nil {
			return err
		}
		if err := c.deps.Agents.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to seed default agent %s: %w", entity.Name(), err)
		}
	}
	return nil
}

// AgentByID returns the runtime agent with the given ID, or nil.
func (c *Coordinator) AgentByID(agentID uint) *Agent {
	return c.agents[agentID]
}

// AgentByRole returns the first runtime agent with the given role, or nil.
func (c *Coordinator) AgentByRole(role agent.Role) *Agent {
	if c.coordinator != nil && role == agent.RoleCoordinator {
		return c.coordinator
	}
	for _, a := range c.agents {
		if a.Role() == role {
			return a
		}
	}
	return nil
}

// ProcessUserMessage persists the user message, produces the coordinator's
// reply, persists it, and scans the turn for ticket intent. Every call
// stores exactly two message rows: the user message and the agent reply.
func (c *Coordinator) ProcessUserMessage(ctx context.Context, message string, conversationID uint, imagePath string) (string, error) {
	if c.coordinator == nil {
		return "", fmt.Errorf("no coordinator agent found")
	}

	if err := c.primeCoordinatorContext(ctx, conversationID); err != nil {
		return "", err
	}

	userMsg, err := conversation.NewUserMessage(conversationID, message, imagePath)
	if err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}
	if err := c.deps.Messages.Save(ctx, userMsg); err != nil {
		return "", err
	}

	reply := c.coordinator.Process(ctx, message, imagePath)

	agentID := c.coordinator.ID()
	replyMsg, err := conversation.NewAgentMessage(conversationID, &agentID, reply)
	if err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}
	if err := c.deps.Messages.Save(ctx, replyMsg); err != nil {
		return "", err
	}

	if err := c.analyzeForActions(ctx, message); err != nil {
		return "", err
	}

	return reply, nil
}

// primeCoordinatorContext rebuilds the coordinator agent's context from the
// conversation's persisted messages.
func (c *Coordinator) primeCoordinatorContext(ctx context.Context, conversationID uint) error {
	messages, err := c.deps.Messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return err
	}

	turns := make([]inference.Turn, 0, len(messages))
	for _, msg := range messages {
		role := inference.RoleAssistant
		if msg.IsUser() {
			role = inference.RoleUser
		}
		turns = append(turns, inference.Turn{Role: role, Content: msg.Content()})
	}

	c.coordinator.LoadContext(turns)
	return nil
}

// analyzeForActions runs the intent scan over the user message. A ticket
// request asks the planner for an elaborated specification, then creates a
// single medium-priority ticket titled with the leading 100 characters of
// the raw message. The planner's elaboration is advisory only and is not
// parsed into the ticket.
func (c *Coordinator) analyzeForActions(ctx context.Context, userMessage string) error {
	if !c.deps.Classifier.WantsTicket(userMessage) {
		return nil
	}

	if planner := c.AgentByRole(agent.RolePlanner); planner != nil {
		planningPrompt := fmt.Sprintf(
			"Based on this user request, create a detailed ticket specification:\n\n"+
				"User request: %s\n\n"+
				"Include a title, description, and priority level.",
			userMessage,
		)
		planner.Process(ctx, planningPrompt, "")
	}

	title := userMessage
	if runes := []rune(userMessage); len(runes) > ticketTitleRunes {
		title = string(runes[:ticketTitleRunes])
	}

	t, err := ticket.NewTicket(c.projectID, title, userMessage, vo.PriorityMedium)
	if err != nil {
		return err
	}

	err = c.deps.TxManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return c.deps.Tickets.Save(txCtx, t)
	})
	if err != nil {
		return err
	}

	c.logger.Infow("created ticket from user message", "ticket_id", t.ID(), "title", title)
	return nil
}

// AssignTicket assigns a ticket to an agent, forcing it to in_progress.
// Unknown tickets or agents report false; persistence failures propagate.
func (c *Coordinator) AssignTicket(ctx context.Context, ticketID, agentID uint) (bool, error) {
	if c.AgentByID(agentID) == nil {
		c.logger.Warnw("agent not found for assignment", "agent_id", agentID)
		return false, nil
	}

	t, err := c.deps.Tickets.GetByID(ctx, ticketID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	if err := t.AssignTo(agentID); err != nil {
		return false, err
	}

	err = c.deps.TxManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return c.deps.Tickets.Update(txCtx, t)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// UpdateTicketStatus moves a ticket to the given status. Unknown tickets
// report false.
func (c *Coordinator) UpdateTicketStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) (bool, error) {
	t, err := c.deps.Tickets.GetByID(ctx, ticketID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	if err := t.ChangeStatus(status); err != nil {
		return false, err
	}

	err = c.deps.TxManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return c.deps.Tickets.Update(txCtx, t)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// CreateCheckpoint creates a checkpoint for the coordinator's project.
func (c *Coordinator) CreateCheckpoint(ctx context.Context, name, description string, milestoneDate *time.Time) (uint, error) {
	cp, err := checkpoint.NewCheckpoint(c.projectID, name, description, milestoneDate)
	if err != nil {
		return 0, apperrors.NewValidationError(err.Error())
	}

	err = c.deps.TxManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return c.deps.Checkpoints.Save(txCtx, cp)
	})
	if err != nil {
		return 0, err
	}

	return cp.ID(), nil
}

// AddTicketToCheckpoint links a ticket to a checkpoint. Missing rows or an
// existing link report false.
func (c *Coordinator) AddTicketToCheckpoint(ctx context.Context, checkpointID, ticketID uint) (bool, error) {
	if _, err := c.deps.Checkpoints.GetByID(ctx, checkpointID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	if _, err := c.deps.Tickets.GetByID(ctx, ticketID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	return c.deps.Checkpoints.AttachTicket(ctx, checkpointID, ticketID)
}

// CreateConversation opens a conversation on the coordinator's project.
// An empty title falls back to a timestamp title.
func (c *Coordinator) CreateConversation(ctx context.Context, customerID uint, title string) (uint, error) {
	conv, err := conversation.NewConversation(customerID, c.projectID, title)
	if err != nil {
		return 0, apperrors.NewValidationError(err.Error())
	}

	if err := c.deps.Conversations.Save(ctx, conv); err != nil {
		return 0, err
	}

	return conv.ID(), nil
}
