package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"fractalyx/internal/infrastructure/persistence/models"
	"fractalyx/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy for the environment: goose SQL scripts in
// production and test, GORM auto-migration everywhere else.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "production", "test":
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerWithStrategy creates a manager with an explicit strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// AllModels lists every persistence model in schema order.
func AllModels() []interface{} {
	return []interface{}{
		&models.ProjectModel{},
		&models.AgentModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.CheckpointModel{},
		&models.CheckpointTicketModel{},
		&models.ConversationModel{},
		&models.MessageModel{},
		&models.CustomerModel{},
		&models.SubscriptionModel{},
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AllModels()
	}

	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(modelList))

	if err := m.strategy.Migrate(db, modelList...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
