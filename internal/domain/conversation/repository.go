package conversation

import "context"

type Repository interface {
	Save(ctx context.Context, conversation *Conversation) error
	Update(ctx context.Context, conversation *Conversation) error
	GetByID(ctx context.Context, conversationID uint) (*Conversation, error)
	// ListByCustomer returns the customer's conversations, most recently
	// updated first.
	ListByCustomer(ctx context.Context, customerID uint) ([]*Conversation, error)
	Recent(ctx context.Context, customerID uint, limit int) ([]*Conversation, error)
}

type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	// ListByConversation returns messages in chronological order.
	ListByConversation(ctx context.Context, conversationID uint) ([]*Message, error)
	CountByConversation(ctx context.Context, conversationID uint) (int64, error)
}
