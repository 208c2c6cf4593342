package usecases

import (
	"context"
	"time"

	"fractalyx/internal/application/checkpoint/dto"
	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/domain/project"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// CreateCheckpointCommand represents the input for creating a checkpoint.
// RelatedTicketIDs are attached after creation; tickets outside the
// checkpoint's project are skipped silently.
type CreateCheckpointCommand struct {
	ProjectID        uint   `json:"project_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MilestoneDate    string `json:"milestone_date"`
	RelatedTicketIDs []uint `json:"related_ticket_ids"`
}

// CreateCheckpointResult represents the output of creating a checkpoint
type CreateCheckpointResult struct {
	Checkpoint *dto.CheckpointDTO `json:"checkpoint"`
}

// CreateCheckpointUseCase handles checkpoint creation
type CreateCheckpointUseCase struct {
	checkpointRepo checkpoint.Repository
	projectRepo    project.Repository
	ticketRepo     ticket.TicketRepository
	txManager      *db.TransactionManager
	logger         logger.Interface
}

// NewCreateCheckpointUseCase creates a new instance of CreateCheckpointUseCase
func NewCreateCheckpointUseCase(
	checkpointRepo checkpoint.Repository,
	projectRepo project.Repository,
	ticketRepo ticket.TicketRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateCheckpointUseCase {
	return &CreateCheckpointUseCase{
		checkpointRepo: checkpointRepo,
		projectRepo:    projectRepo,
		ticketRepo:     ticketRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute creates a checkpoint and links any same-project tickets
func (uc *CreateCheckpointUseCase) Execute(ctx context.Context, cmd CreateCheckpointCommand) (*CreateCheckpointResult, error) {
	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, err
	}

	var milestoneDate *time.Time
	if cmd.MilestoneDate != "" {
		parsed, err := parseMilestoneDate(cmd.MilestoneDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid milestone_date format, expected RFC3339 or YYYY-MM-DD")
		}
		milestoneDate = &parsed
	}

	cp, err := checkpoint.NewCheckpoint(cmd.ProjectID, cmd.Name, cmd.Description, milestoneDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.checkpointRepo.Save(txCtx, cp); err != nil {
			return err
		}

		for _, ticketID := range cmd.RelatedTicketIDs {
			t, err := uc.ticketRepo.GetByID(txCtx, ticketID)
			if err != nil {
				if errors.IsNotFoundError(err) {
					continue
				}
				return err
			}
			if t.ProjectID() != cmd.ProjectID {
				continue
			}
			if _, err := uc.checkpointRepo.AttachTicket(txCtx, cp.ID(), ticketID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save checkpoint", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	uc.logger.Infow("checkpoint created", "checkpoint_id", cp.ID(), "project_id", cmd.ProjectID)

	return &CreateCheckpointResult{Checkpoint: dto.FromCheckpoint(cp)}, nil
}

func parseMilestoneDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
