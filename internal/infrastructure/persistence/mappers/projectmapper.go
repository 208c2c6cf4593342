package mappers

import (
	"fractalyx/internal/domain/project"
	"fractalyx/internal/infrastructure/persistence/models"
)

type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(
		model.ID,
		model.Name,
		model.Description,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
