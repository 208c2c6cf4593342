package usecases

import "context"

// CreateProjectExecutor defines the interface for creating projects
type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error)
}

// GetProjectExecutor defines the interface for fetching a project
type GetProjectExecutor interface {
	Execute(ctx context.Context, cmd GetProjectCommand) (*GetProjectResult, error)
}

// ListProjectsExecutor defines the interface for listing projects
type ListProjectsExecutor interface {
	Execute(ctx context.Context) (*ListProjectsResult, error)
}
