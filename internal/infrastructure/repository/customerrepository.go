package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/infrastructure/persistence/mappers"
	"fractalyx/internal/infrastructure/persistence/models"
	"fractalyx/internal/shared/db"
	apperrors "fractalyx/internal/shared/errors"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email or username already registered")
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}

	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) GetByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("stripe_customer_id = ?", stripeCustomerID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, s *customer.Subscription) error {
	model := r.mapper.SubscriptionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *customer.Subscription) error {
	model := r.mapper.SubscriptionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Select("tier", "features", "active", "end_date", "auto_renew", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, subscriptionID uint) (*customer.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, subscriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.SubscriptionToDomain(&model)
}

func (r *SubscriptionRepository) GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*customer.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("stripe_subscription_id = ?", stripeSubscriptionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.SubscriptionToDomain(&model)
}

func (r *SubscriptionRepository) GetActiveByCustomer(ctx context.Context, customerID uint) (*customer.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customer_id = ? AND active = ?", customerID, true).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("no active subscription")
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.SubscriptionToDomain(&model)
}

func (r *SubscriptionRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*customer.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.SubscriptionModel
	if err := tx.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subscriptions := make([]*customer.Subscription, 0, len(modelList))
	for i := range modelList {
		s, err := r.mapper.SubscriptionToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, s)
	}

	return subscriptions, nil
}
