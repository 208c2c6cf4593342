package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalyx/internal/domain/agent"
	"fractalyx/internal/domain/ticket"
	vo "fractalyx/internal/domain/ticket/valueobjects"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

func testAgent(t *testing.T, id uint) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent("Diana", agent.RoleDeveloper, "", agent.DefaultModel)
	require.NoError(t, err)
	require.NoError(t, a.SetID(id))
	return a
}

func TestAssignTicketUseCase_Execute(t *testing.T) {
	t.Run("assignment forces in_progress", func(t *testing.T) {
		tk, err := ticket.NewTicket(1, "Fix pagination", "", vo.PriorityLow)
		require.NoError(t, err)
		require.NoError(t, tk.SetID(7))
		require.NoError(t, tk.ChangeStatus(vo.StatusCompleted))

		var updated *ticket.Ticket
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tk, nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		agentRepo := &mockAgentRepository{
			GetByIDFunc: func(ctx context.Context, agentID uint) (*agent.Agent, error) {
				return testAgent(t, agentID), nil
			},
		}

		uc := NewAssignTicketUseCase(ticketRepo, agentRepo, newTestTxManager(t), logger.NewLogger())
		result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 7, AgentID: 4})

		require.NoError(t, err)
		assert.Equal(t, vo.StatusInProgress.String(), result.Ticket.Status)
		require.NotNil(t, result.Ticket.AssignedAgentID)
		assert.Equal(t, uint(4), *result.Ticket.AssignedAgentID)
		require.NotNil(t, updated)
	})

	t.Run("unknown agent propagates not found", func(t *testing.T) {
		agentRepo := &mockAgentRepository{
			GetByIDFunc: func(ctx context.Context, agentID uint) (*agent.Agent, error) {
				return nil, errors.NewNotFoundError("agent not found")
			},
		}

		uc := NewAssignTicketUseCase(&mockTicketRepository{}, agentRepo, newTestTxManager(t), logger.NewLogger())
		_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 7, AgentID: 99})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("unknown ticket propagates not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		agentRepo := &mockAgentRepository{
			GetByIDFunc: func(ctx context.Context, agentID uint) (*agent.Agent, error) {
				return testAgent(t, agentID), nil
			},
		}

		uc := NewAssignTicketUseCase(ticketRepo, agentRepo, newTestTxManager(t), logger.NewLogger())
		_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 404, AgentID: 4})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
