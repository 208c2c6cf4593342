package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/infrastructure/auth"
	"fractalyx/internal/shared/db"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockCustomerRepository struct {
	SaveFunc                  func(ctx context.Context, c *customer.Customer) error
	UpdateFunc                func(ctx context.Context, c *customer.Customer) error
	GetByIDFunc               func(ctx context.Context, customerID uint) (*customer.Customer, error)
	GetByEmailFunc            func(ctx context.Context, email string) (*customer.Customer, error)
	GetByUsernameFunc         func(ctx context.Context, username string) (*customer.Customer, error)
	GetByStripeCustomerIDFunc func(ctx context.Context, stripeCustomerID string) (*customer.Customer, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, customerID uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (*customer.Customer, error) {
	if m.GetByStripeCustomerIDFunc != nil {
		return m.GetByStripeCustomerIDFunc(ctx, stripeCustomerID)
	}
	return nil, nil
}

type mockTokenService struct {
	GenerateFunc func(customerID uint, username string) (*auth.TokenPair, error)
	VerifyFunc   func(tokenString string) (*auth.Claims, error)
	RefreshFunc  func(refreshTokenString string) (*auth.TokenPair, error)
}

func (m *mockTokenService) Generate(customerID uint, username string) (*auth.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(customerID, username)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (m *mockTokenService) Verify(tokenString string) (*auth.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(tokenString)
	}
	return &auth.Claims{}, nil
}

func (m *mockTokenService) Refresh(refreshTokenString string) (*auth.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshTokenString)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenStore struct {
	RevokeFunc    func(ctx context.Context, token string, ttl time.Duration) error
	IsRevokedFunc func(ctx context.Context, token string) bool
}

func (m *mockTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token, ttl)
	}
	return nil
}

func (m *mockTokenStore) IsRevoked(ctx context.Context, token string) bool {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, token)
	}
	return false
}

func testCustomer(t *testing.T, id uint, email, username string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(email, username, "hashed:secret123", "")
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	return c
}
