package usecases

import "context"

// CreateConversationExecutor defines the interface for opening conversations
type CreateConversationExecutor interface {
	Execute(ctx context.Context, cmd CreateConversationCommand) (*CreateConversationResult, error)
}

// ListConversationsExecutor defines the interface for listing a customer's conversations
type ListConversationsExecutor interface {
	Execute(ctx context.Context, cmd ListConversationsCommand) (*ListConversationsResult, error)
}

// RecentConversationsExecutor defines the interface for the sidebar recency list
type RecentConversationsExecutor interface {
	Execute(ctx context.Context, cmd RecentConversationsCommand) (*RecentConversationsResult, error)
}

// ListMessagesExecutor defines the interface for a conversation transcript
type ListMessagesExecutor interface {
	Execute(ctx context.Context, cmd ListMessagesCommand) (*ListMessagesResult, error)
}
