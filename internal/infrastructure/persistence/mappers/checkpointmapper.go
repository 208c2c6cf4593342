package mappers

import (
	"time"

	"fractalyx/internal/domain/checkpoint"
	"fractalyx/internal/infrastructure/persistence/models"
)

type CheckpointMapper interface {
	ToModel(c *checkpoint.Checkpoint) *models.CheckpointModel
	ToDomain(model *models.CheckpointModel) (*checkpoint.Checkpoint, error)
}

type CheckpointMapperImpl struct{}

func NewCheckpointMapper() CheckpointMapper {
	return &CheckpointMapperImpl{}
}

func (m *CheckpointMapperImpl) ToModel(c *checkpoint.Checkpoint) *models.CheckpointModel {
	model := &models.CheckpointModel{
		ID:          c.ID(),
		ProjectID:   c.ProjectID(),
		Name:        c.Name(),
		Description: c.Description(),
		Completed:   c.Completed(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}

	if c.MilestoneDate() != nil {
		milestone := c.MilestoneDate().UnixMilli()
		model.MilestoneDate = &milestone
	}

	return model
}

func (m *CheckpointMapperImpl) ToDomain(model *models.CheckpointModel) (*checkpoint.Checkpoint, error) {
	var milestoneDate *time.Time
	if model.MilestoneDate != nil {
		t := convertMillisToTime(*model.MilestoneDate)
		milestoneDate = &t
	}

	return checkpoint.ReconstructCheckpoint(
		model.ID,
		model.ProjectID,
		model.Name,
		model.Description,
		model.Completed,
		milestoneDate,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
