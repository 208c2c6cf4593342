package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"fractalyx/internal/domain/customer"
	"fractalyx/internal/infrastructure/persistence/models"
)

type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
	SubscriptionToModel(s *customer.Subscription) *models.SubscriptionModel
	SubscriptionToDomain(model *models.SubscriptionModel) (*customer.Subscription, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:               c.ID(),
		Email:            c.Email(),
		Username:         c.Username(),
		PasswordHash:     c.PasswordHash(),
		Company:          c.Company(),
		StripeCustomerID: c.StripeCustomerID(),
		CreatedAt:        c.CreatedAt().UnixMilli(),
		UpdatedAt:        c.UpdatedAt().UnixMilli(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Email,
		model.Username,
		model.PasswordHash,
		model.Company,
		model.StripeCustomerID,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *CustomerMapperImpl) SubscriptionToModel(s *customer.Subscription) *models.SubscriptionModel {
	model := &models.SubscriptionModel{
		ID:                   s.ID(),
		CustomerID:           s.CustomerID(),
		StripeSubscriptionID: s.StripeSubscriptionID(),
		Tier:                 s.Tier().String(),
		Active:               s.Active(),
		StartDate:            s.StartDate().UnixMilli(),
		AutoRenew:            s.AutoRenew(),
		CreatedAt:            s.CreatedAt().UnixMilli(),
		UpdatedAt:            s.UpdatedAt().UnixMilli(),
	}

	if s.EndDate() != nil {
		end := s.EndDate().UnixMilli()
		model.EndDate = &end
	}

	if features := s.Features(); len(features) > 0 {
		data, _ := json.Marshal(features)
		model.Features = datatypes.JSON(data)
	}

	return model
}

func (m *CustomerMapperImpl) SubscriptionToDomain(model *models.SubscriptionModel) (*customer.Subscription, error) {
	tier, err := customer.NewTier(model.Tier)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if model.EndDate != nil {
		t := convertMillisToTime(*model.EndDate)
		endDate = &t
	}

	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to decode subscription features: %w", err)
		}
	}

	return customer.ReconstructSubscription(
		model.ID,
		model.CustomerID,
		model.StripeSubscriptionID,
		tier,
		features,
		model.Active,
		convertMillisToTime(model.StartDate),
		endDate,
		model.AutoRenew,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
