package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fractalyx/internal/domain/agent"
	"fractalyx/internal/infrastructure/persistence/mappers"
	"fractalyx/internal/infrastructure/persistence/models"
	"fractalyx/internal/shared/db"
	apperrors "fractalyx/internal/shared/errors"
)

type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{
		db:     db,
		mapper: mappers.NewAgentMapper(),
	}
}

func (r *AgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save agent: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AgentRepository) GetByID(ctx context.Context, agentID uint) (*agent.Agent, error) {
	var model models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("agent not found")
		}
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AgentRepository) GetByRole(ctx context.Context, role agent.Role) (*agent.Agent, error) {
	var model models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("role = ?", role.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("agent not found")
		}
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AgentRepository) List(ctx context.Context) ([]*agent.Agent, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.AgentModel
	if err := tx.Order("id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	agents := make([]*agent.Agent, 0, len(modelList))
	for i := range modelList {
		a, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}

	return agents, nil
}

func (r *AgentRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AgentModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count agents: %w", err)
	}

	return count, nil
}
