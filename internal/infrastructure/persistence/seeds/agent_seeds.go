package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"fractalyx/internal/infrastructure/persistence/models"
)

// SeedDefaultAgents creates the six fixed role agents when the agents table
// is empty. Seeding is idempotent: an existing population is left untouched.
func SeedDefaultAgents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AgentModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count agents: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []models.AgentModel{
		{Name: "Alice", Role: "coordinator", Model: "llama3:8b-vision", Description: "Default coordinator agent"},
		{Name: "Bob", Role: "planner", Model: "llama3:8b-vision", Description: "Default planner agent"},
		{Name: "Charlie", Role: "researcher", Model: "llama3:8b-vision", Description: "Default researcher agent"},
		{Name: "Diana", Role: "developer", Model: "llama3:8b-vision", Description: "Default developer agent"},
		{Name: "Eve", Role: "tester", Model: "llama3:8b-vision", Description: "Default tester agent"},
		{Name: "Frank", Role: "reviewer", Model: "llama3:8b-vision", Description: "Default reviewer agent"},
	}

	for _, a := range defaults {
		if err := db.Create(&a).Error; err != nil {
			return fmt.Errorf("failed to seed agent %s: %w", a.Name, err)
		}
	}

	return nil
}
