package usecases

import (
	"context"

	"fractalyx/internal/application/project/dto"
	"fractalyx/internal/domain/project"
	"fractalyx/internal/domain/ticket"
	"fractalyx/internal/shared/logger"
)

// ListProjectsResult represents the output of listing projects
type ListProjectsResult struct {
	Projects []*dto.ProjectDTO `json:"projects"`
	Total    int               `json:"total"`
}

// ListProjectsUseCase handles listing all projects with ticket counts
type ListProjectsUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

// NewListProjectsUseCase creates a new instance of ListProjectsUseCase
func NewListProjectsUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Execute lists all projects with their ticket counts
func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsResult, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		counts, err := uc.ticketRepo.CountByProject(ctx, p.ID())
		if err != nil {
			return nil, err
		}
		out = append(out, dto.FromProjectWithCounts(p, counts))
	}

	return &ListProjectsResult{Projects: out, Total: len(out)}, nil
}
