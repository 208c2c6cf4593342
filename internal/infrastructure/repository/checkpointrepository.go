package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/infrastructure/persistence/mappers"
	"fractalyx/internal/infrastructure/persistence/models"
	"fractalyx/internal/shared/db"
	apperrors "fractalyx/internal/shared/errors"
)

type CheckpointRepository struct {
	db     *gorm.DB
	mapper mappers.CheckpointMapper
}

func NewCheckpointRepository(db *gorm.DB) *CheckpointRepository {
	return &CheckpointRepository{
		db:     db,
		mapper: mappers.NewCheckpointMapper(),
	}
}

func (r *CheckpointRepository) Save(ctx context.Context, c *checkpoint.Checkpoint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CheckpointRepository) Update(ctx context.Context, c *checkpoint.Checkpoint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CheckpointModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "completed", "milestone_date", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update checkpoint: %w", result.Error)
	}

	return nil
}

func (r *CheckpointRepository) GetByID(ctx context.Context, checkpointID uint) (*checkpoint.Checkpoint, error) {
	var model models.CheckpointModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, checkpointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("checkpoint not found")
		}
		return nil, fmt.Errorf("failed to find checkpoint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CheckpointRepository) ListByProject(ctx context.Context, projectID uint) ([]*checkpoint.Checkpoint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.CheckpointModel
	if err := tx.
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}

	checkpoints := make([]*checkpoint.Checkpoint, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, c)
	}

	return checkpoints, nil
}

func (r *CheckpointRepository) AttachTicket(ctx context.Context, checkpointID, ticketID uint) (bool, error) {
	attached, err := r.IsTicketAttached(ctx, checkpointID, ticketID)
	if err != nil {
		return false, err
	}
	if attached {
		return false, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	link := models.CheckpointTicketModel{
		CheckpointID: checkpointID,
		TicketID:     ticketID,
	}

	if err := tx.Create(&link).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to attach ticket to checkpoint: %w", err)
	}

	return true, nil
}

func (r *CheckpointRepository) DetachTicket(ctx context.Context, checkpointID, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("checkpoint_id = ? AND ticket_id = ?", checkpointID, ticketID).
		Delete(&models.CheckpointTicketModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to detach ticket from checkpoint: %w", result.Error)
	}

	return nil
}

func (r *CheckpointRepository) IsTicketAttached(ctx context.Context, checkpointID, ticketID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.CheckpointTicketModel{}).
		Where("checkpoint_id = ? AND ticket_id = ?", checkpointID, ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check checkpoint ticket link: %w", err)
	}

	return count > 0, nil
}

func (r *CheckpointRepository) ListTicketIDs(ctx context.Context, checkpointID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketIDs []uint
	if err := tx.Model(&models.CheckpointTicketModel{}).
		Where("checkpoint_id = ?", checkpointID).
		Order("ticket_id ASC").
		Pluck("ticket_id", &ticketIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list checkpoint tickets: %w", err)
	}

	return ticketIDs, nil
}
