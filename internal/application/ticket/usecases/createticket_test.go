package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalyx/internal/domain/ticket"
	vo "fractalyx/internal/domain/ticket/valueobjects"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		command      CreateTicketCommand
		wantPriority vo.Priority
	}{
		{
			name: "explicit high priority",
			command: CreateTicketCommand{
				ProjectID:   1,
				Title:       "Implement search",
				Description: "Full-text search over tickets",
				Priority:    "high",
			},
			wantPriority: vo.PriorityHigh,
		},
		{
			name: "unknown priority falls back to medium",
			command: CreateTicketCommand{
				ProjectID: 1,
				Title:     "Tune indexes",
				Priority:  "urgent",
			},
			wantPriority: vo.PriorityMedium,
		},
		{
			name: "empty priority falls back to medium",
			command: CreateTicketCommand{
				ProjectID: 1,
				Title:     "Tune indexes",
			},
			wantPriority: vo.PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *ticket.Ticket
			repo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					saved = tk
					return tk.SetID(10)
				},
			}

			uc := NewCreateTicketUseCase(repo, newTestTxManager(t), logger.NewLogger())
			result, err := uc.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, result.Ticket)
			assert.Equal(t, uint(10), result.Ticket.ID)
			assert.Equal(t, vo.StatusOpen.String(), result.Ticket.Status)
			assert.Equal(t, tt.wantPriority.String(), result.Ticket.Priority)

			require.NotNil(t, saved)
			assert.Equal(t, tt.command.Title, saved.Title())
		})
	}
}

func TestCreateTicketUseCase_Execute_DueDate(t *testing.T) {
	t.Run("bare date accepted", func(t *testing.T) {
		var saved *ticket.Ticket
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(1)
			},
		}

		uc := NewCreateTicketUseCase(repo, newTestTxManager(t), logger.NewLogger())
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			ProjectID: 1,
			Title:     "Release prep",
			DueDate:   "2026-09-15",
		})

		require.NoError(t, err)
		require.NotNil(t, saved.DueDate())
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), saved.DueDate().UTC())
	})

	t.Run("RFC3339 accepted", func(t *testing.T) {
		var saved *ticket.Ticket
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(1)
			},
		}

		uc := NewCreateTicketUseCase(repo, newTestTxManager(t), logger.NewLogger())
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			ProjectID: 1,
			Title:     "Release prep",
			DueDate:   "2026-09-15T08:30:00Z",
		})

		require.NoError(t, err)
		require.NotNil(t, saved.DueDate())
		assert.Equal(t, 8, saved.DueDate().UTC().Hour())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, newTestTxManager(t), logger.NewLogger())
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			ProjectID: 1,
			Title:     "Release prep",
			DueDate:   "next tuesday",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestCreateTicketUseCase_Execute_Parent(t *testing.T) {
	parent, err := ticket.NewTicket(1, "Parent", "", vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, parent.SetID(5))

	otherProject, err := ticket.NewTicket(2, "Other", "", vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, otherProject.SetID(6))

	parentID := uint(5)
	otherID := uint(6)
	missingID := uint(99)

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			switch ticketID {
			case 5:
				return parent, nil
			case 6:
				return otherProject, nil
			default:
				return nil, errors.NewNotFoundError("ticket not found")
			}
		},
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(20)
		},
	}

	uc := NewCreateTicketUseCase(repo, newTestTxManager(t), logger.NewLogger())

	t.Run("valid parent linked", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			ProjectID:      1,
			Title:          "Child",
			ParentTicketID: &parentID,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Ticket.ParentTicketID)
		assert.Equal(t, uint(5), *result.Ticket.ParentTicketID)
	})

	t.Run("parent from another project rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			ProjectID:      1,
			Title:          "Child",
			ParentTicketID: &otherID,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("missing parent rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			ProjectID:      1,
			Title:          "Child",
			ParentTicketID: &missingID,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestCreateTicketUseCase_Execute_Validation(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, newTestTxManager(t), logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "No project"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateTicketCommand{ProjectID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
