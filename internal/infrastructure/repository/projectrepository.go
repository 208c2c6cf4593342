package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fractalyx/internal/domain/project"
	"fractalyx/internal/infrastructure/persistence/mappers"
	"fractalyx/internal/infrastructure/persistence/models"
	"fractalyx/internal/shared/db"
	apperrors "fractalyx/internal/shared/errors"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ProjectModel
	if err := tx.Order("created_at ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (r *ProjectRepository) GetFirst(ctx context.Context) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("no projects exist")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
