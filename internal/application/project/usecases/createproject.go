package usecases

import (
	"context"

	"fractalyx/internal/application/project/dto"
	"fractalyx/internal/domain/project"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// CreateProjectCommand represents the input for creating a project
type CreateProjectCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProjectResult represents the output of creating a project
type CreateProjectResult struct {
	Project *dto.ProjectDTO `json:"project"`
}

// CreateProjectUseCase handles project creation
type CreateProjectUseCase struct {
	projectRepo project.Repository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

// NewCreateProjectUseCase creates a new instance of CreateProjectUseCase
func NewCreateProjectUseCase(
	projectRepo project.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute creates a new project with a unique name
func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	if existing, err := uc.projectRepo.GetByName(ctx, cmd.Name); err == nil && existing != nil {
		return nil, errors.NewConflictError("project name already exists")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	p, err := project.NewProject(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.Save(txCtx, p)
	})
	if err != nil {
		uc.logger.Errorw("failed to save project", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "name", p.Name())

	return &CreateProjectResult{Project: dto.FromProject(p)}, nil
}
