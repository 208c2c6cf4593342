package usecases

import (
	"context"

	"fractalyx/internal/application/project/dto"
	"fractalyx/internal/domain/project"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/logger"
)

// GetProjectCommand represents the input for fetching a project
type GetProjectCommand struct {
	ProjectID uint `json:"project_id"`
}

// GetProjectResult represents the output of fetching a project
type GetProjectResult struct {
	Project *dto.ProjectDTO `json:"project"`
}

// GetProjectUseCase handles single-project lookups with ticket counts
type GetProjectUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

// NewGetProjectUseCase creates a new instance of GetProjectUseCase
func NewGetProjectUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Execute fetches a project and its ticket counts
func (uc *GetProjectUseCase) Execute(ctx context.Context, cmd GetProjectCommand) (*GetProjectResult, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	counts, err := uc.ticketRepo.CountByProject(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	return &GetProjectResult{Project: dto.FromProjectWithCounts(p, counts)}, nil
}
