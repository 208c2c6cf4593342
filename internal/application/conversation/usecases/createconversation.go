package usecases

import (
	"context"

	"fractalyx/internal/application/conversation/dto"
	"fractalyx/internal/domain/conversation"
	"fractalyx/internal/domain/project"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

// defaultProjectName names the project created on first use when no project
// exists yet.
const defaultProjectName = "Default Project"

// CreateConversationCommand represents the input for opening a conversation.
// ProjectID zero targets the oldest project, creating one if none exists.
type CreateConversationCommand struct {
	CustomerID uint   `json:"customer_id"`
	ProjectID  uint   `json:"project_id"`
	Title      string `json:"title"`
}

// CreateConversationResult represents the output of opening a conversation
type CreateConversationResult struct {
	Conversation *dto.ConversationDTO `json:"conversation"`
}

// CreateConversationUseCase handles opening chat conversations
type CreateConversationUseCase struct {
	conversationRepo conversation.Repository
	projectRepo      project.Repository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

// NewCreateConversationUseCase creates a new instance of CreateConversationUseCase
func NewCreateConversationUseCase(
	conversationRepo conversation.Repository,
	projectRepo project.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateConversationUseCase {
	return &CreateConversationUseCase{
		conversationRepo: conversationRepo,
		projectRepo:      projectRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute opens a conversation, resolving the target project first
func (uc *CreateConversationUseCase) Execute(ctx context.Context, cmd CreateConversationCommand) (*CreateConversationResult, error) {
	projectID := cmd.ProjectID
	if projectID == 0 {
		id, err := uc.resolveDefaultProject(ctx)
		if err != nil {
			return nil, err
		}
		projectID = id
	} else if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	conv, err := conversation.NewConversation(cmd.CustomerID, projectID, cmd.Title)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.conversationRepo.Save(txCtx, conv)
	})
	if err != nil {
		uc.logger.Errorw("failed to save conversation", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("conversation created", "conversation_id", conv.ID(), "project_id", projectID)

	return &CreateConversationResult{Conversation: dto.FromConversation(conv)}, nil
}

func (uc *CreateConversationUseCase) resolveDefaultProject(ctx context.Context) (uint, error) {
	p, err := uc.projectRepo.GetFirst(ctx)
	if err == nil {
		return p.ID(), nil
	}
	if !errors.IsNotFoundError(err) {
		return 0, err
	}

	created, err := project.NewProject(defaultProjectName, "Automatically created project")
	if err != nil {
		return 0, err
	}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.Save(txCtx, created)
	})
	if err != nil {
		return 0, err
	}

	uc.logger.Infow("created default project", "project_id", created.ID())
	return created.ID(), nil
}
