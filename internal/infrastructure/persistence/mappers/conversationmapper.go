package mappers

import (
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/infrastructure/persistence/models"
)

type ConversationMapper interface {
	ToModel(c *conversation.Conversation) *models.ConversationModel
	ToDomain(model *models.ConversationModel) (*conversation.Conversation, error)
	MessageToModel(msg *conversation.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*conversation.Message, error)
}

type ConversationMapperImpl struct{}

func NewConversationMapper() ConversationMapper {
	return &ConversationMapperImpl{}
}

func (m *ConversationMapperImpl) ToModel(c *conversation.Conversation) *models.ConversationModel {
	return &models.ConversationModel{
		ID:         c.ID(),
		CustomerID: c.CustomerID(),
		ProjectID:  c.ProjectID(),
		Title:      c.Title(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *ConversationMapperImpl) ToDomain(model *models.ConversationModel) (*conversation.Conversation, error) {
	return conversation.ReconstructConversation(
		model.ID,
		model.CustomerID,
		model.ProjectID,
		model.Title,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *ConversationMapperImpl) MessageToModel(msg *conversation.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:             msg.ID(),
		ConversationID: msg.ConversationID(),
		AgentID:        msg.AgentID(),
		Content:        msg.Content(),
		IsUser:         msg.IsUser(),
		HasImage:       msg.HasImage(),
		ImagePath:      msg.ImagePath(),
		CreatedAt:      msg.CreatedAt().UnixMilli(),
	}
}

func (m *ConversationMapperImpl) MessageToDomain(model *models.MessageModel) (*conversation.Message, error) {
	return conversation.ReconstructMessage(
		model.ID,
		model.ConversationID,
		model.AgentID,
		model.Content,
		model.IsUser,
		model.HasImage,
		model.ImagePath,
		convertMillisToTime(model.CreatedAt),
	)
}
