package dto

import (
	"time"

	"fractalyx/internal/domain/conversation"
)

type ConversationDTO struct {
	ID         uint      `json:"id"`
	CustomerID uint      `json:"customer_id"`
	ProjectID  uint      `json:"project_id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MessageDTO struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	AgentID        *uint     `json:"agent_id,omitempty"`
	AgentName      string    `json:"agent_name,omitempty"`
	Content        string    `json:"content"`
	IsUser         bool      `json:"is_user"`
	HasImage       bool      `json:"has_image"`
	ImagePath      string    `json:"image_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromConversation(c *conversation.Conversation) *ConversationDTO {
	return &ConversationDTO{
		ID:         c.ID(),
		CustomerID: c.CustomerID(),
		ProjectID:  c.ProjectID(),
		Title:      c.Title(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func FromConversations(conversations []*conversation.Conversation) []*ConversationDTO {
	out := make([]*ConversationDTO, 0, len(conversations))
	for _, c := range conversations {
		out = append(out, FromConversation(c))
	}
	return out
}

func FromMessage(m *conversation.Message, agentName string) *MessageDTO {
	return &MessageDTO{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		AgentID:        m.AgentID(),
		AgentName:      agentName,
		Content:        m.Content(),
		IsUser:         m.IsUser(),
		HasImage:       m.HasImage(),
		ImagePath:      m.ImagePath(),
		CreatedAt:      m.CreatedAt(),
	}
}
