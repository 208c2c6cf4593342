package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/infrastructure/persistence/mappers"
	"fractalyx/internal/infrastructure/persistence/models"
	"fractalyx/internal/shared/db"
	apperrors "fractalyx/internal/shared/errors"
)

type ConversationRepository struct {
	db     *gorm.DB
	mapper mappers.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		mapper: mappers.NewConversationMapper(),
	}
}

func (r *ConversationRepository) Save(ctx context.Context, c *conversation.Conversation) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ConversationRepository) Update(ctx context.Context, c *conversation.Conversation) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ConversationModel{}).
		Where("id = ?", model.ID).
		Select("title", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update conversation: %w", result.Error)
	}

	return nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, conversationID uint) (*conversation.Conversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("conversation not found")
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ConversationRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*conversation.Conversation, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ConversationModel
	if err := tx.
		Where("customer_id = ?", customerID).
		Order("updated_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ConversationRepository) Recent(ctx context.Context, customerID uint, limit int) ([]*conversation.Conversation, error) {
	if limit <= 0 {
		limit = 5
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ConversationModel
	if err := tx.
		Where("customer_id = ?", customerID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent conversations: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ConversationRepository) toDomainList(modelList []models.ConversationModel) ([]*conversation.Conversation, error) {
	conversations := make([]*conversation.Conversation, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.ConversationMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewConversationMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, msg *conversation.Message) error {
	model := r.mapper.MessageToModel(msg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	if err := msg.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.MessageModel
	if err := tx.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*conversation.Message, 0, len(modelList))
	for i := range modelList {
		msg, err := r.mapper.MessageToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (r *MessageRepository) CountByConversation(ctx context.Context, conversationID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.MessageModel{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}
