package usecases

import (
	"context"

	"fractalyx/internal/application/checkpoint/dto"
	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/domain/project"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// ListCheckpointsCommand represents the input for listing project checkpoints
type ListCheckpointsCommand struct {
	ProjectID uint `json:"project_id"`
}

// ListCheckpointsResult represents the output of listing checkpoints
type ListCheckpointsResult struct {
	Checkpoints []*dto.CheckpointDTO `json:"checkpoints"`
	Total       int                  `json:"total"`
}

// ListCheckpointsUseCase handles project-scoped checkpoint listing
type ListCheckpointsUseCase struct {
	checkpointRepo checkpoint.Repository
	projectRepo    project.Repository
	logger         logger.Interface
}

// NewListCheckpointsUseCase creates a new instance of ListCheckpointsUseCase
func NewListCheckpointsUseCase(
	checkpointRepo checkpoint.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *ListCheckpointsUseCase {
	return &ListCheckpointsUseCase{
		checkpointRepo: checkpointRepo,
		projectRepo:    projectRepo,
		logger:         logger,
	}
}

// Execute lists checkpoints for a project
func (uc *ListCheckpointsUseCase) Execute(ctx context.Context, cmd ListCheckpointsCommand) (*ListCheckpointsResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project_id is required")
	}

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, err
	}

	checkpoints, err := uc.checkpointRepo.ListByProject(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	return &ListCheckpointsResult{
		Checkpoints: dto.FromCheckpoints(checkpoints),
		Total:       len(checkpoints),
	}, nil
}
