package usecases

import "context"

// PostMessageExecutor defines the interface for a chat turn
type PostMessageExecutor interface {
	Execute(ctx context.Context, cmd PostMessageCommand) (*PostMessageResult, error)
}
