package project

import "context"

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, projectID uint) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	// GetFirst returns the oldest project, used as the default target when a
	// conversation is started without an explicit project.
	GetFirst(ctx context.Context) (*Project, error)
}
