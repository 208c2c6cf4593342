package conversation

import (
	"fmt"
	"time"

	"fractalyx/internal/shared/biztime"
)

// Message is an immutable chat transcript row. User messages carry no agent
// reference; agent replies record the authoring agent.
type Message struct {
	id             uint
	conversationID uint
	agentID        *uint
	content        string
	isUser         bool
	hasImage       bool
	imagePath      string
	createdAt      time.Time
}

func NewUserMessage(conversationID uint, content string, imagePath string) (*Message, error) {
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if content == "" && imagePath == "" {
		return nil, fmt.Errorf("content cannot be empty")
	}

	return &Message{
		conversationID: conversationID,
		content:        content,
		isUser:         true,
		hasImage:       imagePath != "",
		imagePath:      imagePath,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func NewAgentMessage(conversationID uint, agentID *uint, content string) (*Message, error) {
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if content == "" {
		return nil, fmt.Errorf("content cannot be empty")
	}

	return &Message{
		conversationID: conversationID,
		agentID:        agentID,
		content:        content,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	conversationID uint,
	agentID *uint,
	content string,
	isUser bool,
	hasImage bool,
	imagePath string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}

	return &Message{
		id:             id,
		conversationID: conversationID,
		agentID:        agentID,
		content:        content,
		isUser:         isUser,
		hasImage:       hasImage,
		imagePath:      imagePath,
		createdAt:      createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) ConversationID() uint {
	return m.conversationID
}

func (m *Message) AgentID() *uint {
	return m.agentID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) IsUser() bool {
	return m.isUser
}

func (m *Message) HasImage() bool {
	return m.hasImage
}

func (m *Message) ImagePath() string {
	return m.imagePath
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
