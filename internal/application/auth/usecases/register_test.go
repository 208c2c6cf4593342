package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
)

func notFoundCustomerRepo() *mockCustomerRepository {
	return &mockCustomerRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*customer.Customer, error) {
			return nil, errors.NewNotFoundError("customer not found")
		},
		GetByUsernameFunc: func(ctx context.Context, username string) (*customer.Customer, error) {
			return nil, errors.NewNotFoundError("customer not found")
		},
		SaveFunc: func(ctx context.Context, c *customer.Customer) error {
			return c.SetID(1)
		},
	}
}

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	repo := notFoundCustomerRepo()

	uc := NewRegisterUseCase(repo, &mockPasswordHasher{}, &mockTokenService{}, newTestTxManager(t), logger.NewLogger())
	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "Dev@Example.com",
		Username: "dev",
		Password: "secret123",
		Company:  "Acme",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Customer)
	assert.Equal(t, uint(1), result.Customer.ID)
	assert.Equal(t, "dev@example.com", result.Customer.Email)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestRegisterUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		command RegisterCommand
	}{
		{"missing email", RegisterCommand{Username: "dev", Password: "secret123"}},
		{"email without at sign", RegisterCommand{Email: "dev.example.com", Username: "dev", Password: "secret123"}},
		{"missing username", RegisterCommand{Email: "dev@example.com", Password: "secret123"}},
		{"short password", RegisterCommand{Email: "dev@example.com", Username: "dev", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUseCase(notFoundCustomerRepo(), &mockPasswordHasher{}, &mockTokenService{}, newTestTxManager(t), logger.NewLogger())
			_, err := uc.Execute(context.Background(), tt.command)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegisterUseCase_Execute_Conflicts(t *testing.T) {
	existing := testCustomer(t, 5, "dev@example.com", "dev")

	t.Run("email already registered", func(t *testing.T) {
		repo := notFoundCustomerRepo()
		repo.GetByEmailFunc = func(ctx context.Context, email string) (*customer.Customer, error) {
			return existing, nil
		}

		uc := NewRegisterUseCase(repo, &mockPasswordHasher{}, &mockTokenService{}, newTestTxManager(t), logger.NewLogger())
		_, err := uc.Execute(context.Background(), RegisterCommand{
			Email:    "dev@example.com",
			Username: "otherdev",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("username already taken", func(t *testing.T) {
		repo := notFoundCustomerRepo()
		repo.GetByUsernameFunc = func(ctx context.Context, username string) (*customer.Customer, error) {
			return existing, nil
		}

		uc := NewRegisterUseCase(repo, &mockPasswordHasher{}, &mockTokenService{}, newTestTxManager(t), logger.NewLogger())
		_, err := uc.Execute(context.Background(), RegisterCommand{
			Email:    "other@example.com",
			Username: "dev",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}
