package usecases

import (
	"context"

	"fractalyx/internal/application/checkpoint/dto"
	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/logger"
)

// SetCheckpointCompletedCommand represents the input for toggling completion
type SetCheckpointCompletedCommand struct {
	CheckpointID uint `json:"checkpoint_id"`
	Completed    bool `json:"completed"`
}

// SetCheckpointCompletedResult represents the output of toggling completion
type SetCheckpointCompletedResult struct {
	Checkpoint *dto.CheckpointDTO `json:"checkpoint"`
}

// SetCheckpointCompletedUseCase marks checkpoints complete or incomplete
type SetCheckpointCompletedUseCase struct {
	checkpointRepo checkpoint.Repository
	txManager      *db.TransactionManager
	logger         logger.Interface
}

// NewSetCheckpointCompletedUseCase creates a new instance of SetCheckpointCompletedUseCase
func NewSetCheckpointCompletedUseCase(
	checkpointRepo checkpoint.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *SetCheckpointCompletedUseCase {
	return &SetCheckpointCompletedUseCase{
		checkpointRepo: checkpointRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute sets the completion flag on a checkpoint
func (uc *SetCheckpointCompletedUseCase) Execute(ctx context.Context, cmd SetCheckpointCompletedCommand) (*SetCheckpointCompletedResult, error) {
	cp, err := uc.checkpointRepo.GetByID(ctx, cmd.CheckpointID)
	if err != nil {
		return nil, err
	}

	cp.SetCompleted(cmd.Completed)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.checkpointRepo.Update(txCtx, cp)
	})
	if err != nil {
		uc.logger.Errorw("failed to update checkpoint", "checkpoint_id", cmd.CheckpointID, "error", err)
		return nil, err
	}

	return &SetCheckpointCompletedResult{Checkpoint: dto.FromCheckpoint(cp)}, nil
}
