package dto

import (
	"time"

	"fractalyx/internal/domain/customer"
)

type CustomerDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCustomer(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:        c.ID(),
		Email:     c.Email(),
		Username:  c.Username(),
		Company:   c.Company(),
		CreatedAt: c.CreatedAt(),
	}
}
