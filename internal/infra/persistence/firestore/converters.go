package firestore

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	gfirestore "cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
)

func toBusinessDomain(id string, m *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:           id,
		Name:         m.Name,
		Description:  m.Description,
		CompanyEmail: m.CompanyEmail,
		OwnerEmail:   m.OwnerEmail,
		OwnerUID:     m.OwnerUID,
		Slug:         m.Slug,
		Payment: entity.Payment{
			StripeAccountID:    m.Payment.StripeAccountID,
			ChargesEnabled:     m.Payment.ChargesEnabled,
			PayoutsEnabled:     m.Payment.PayoutsEnabled,
			OnboardingComplete: m.Payment.OnboardingComplete,
			Method:             m.Payment.Method,
		},
		CreatedAt: m.CreatedAt,
	}
}

// paymentMergeData builds the nested map for a merge write of the given payment fields.
func paymentMergeData(update *entity.PaymentUpdate) map[string]any {
	payment := make(map[string]any, 5)
	if update.StripeAccountID != nil {
		payment["stripeAccountId"] = *update.StripeAccountID
	}
	if update.Method != nil {
		payment["method"] = *update.Method
	}
	if update.Flags != nil {
		payment["chargesEnabled"] = update.Flags.ChargesEnabled
		payment["payoutsEnabled"] = update.Flags.PayoutsEnabled
		payment["onboardingComplete"] = update.Flags.OnboardingComplete
	}

	return map[string]any{model.FieldPayment: payment}
}

func toItemDomain(businessID, id string, m *model.ItemModel) (*entity.Item, error) {
	price, err := decodeAmount(m.Price)
	if err != nil {
		return nil, errors.Wrapf(repository.ErrInvalidItemPrice, "item %s: %v", id, err)
	}

	return &entity.Item{
		ID:             id,
		BusinessID:     businessID,
		Name:           m.Name,
		Description:    m.Description,
		Price:          price,
		ImageURL:       m.ImageURL,
		RequireAddress: m.RequireAddress,
	}, nil
}

// decodeAmount reads a stored amount that may be a number, a numeric string or absent.
func decodeAmount(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero, nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero, nil
		}

		return decimal.NewFromString(trimmed)
	default:
		return decimal.Zero, errors.Errorf("unsupported amount type %T", raw)
	}
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	m := &model.OrderModel{
		ItemID:          o.ItemID,
		ItemName:        o.ItemName,
		UnitPrice:       o.UnitPrice.InexactFloat64(),
		Quantity:        o.Quantity,
		Total:           o.Total.InexactFloat64(),
		BuyerName:       o.BuyerName,
		BuyerEmail:      o.BuyerEmail,
		Notes:           o.Notes,
		Status:          string(o.Status),
		StripeSessionID: o.StripeSessionID,
		CreatedAt:       o.CreatedAt,
		PaidAt:          o.PaidAt,
	}
	if !o.UpdatedAt.IsZero() {
		updatedAt := o.UpdatedAt
		m.UpdatedAt = &updatedAt
	}
	if a := o.ShippingAddress; a != nil {
		m.ShippingAddress = &model.AddressModel{
			Address1:   a.Address1,
			Address2:   a.Address2,
			City:       a.City,
			Region:     a.Region,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		}
	}

	return m
}

func toOrderDomain(businessID, id string, m *model.OrderModel) *entity.Order {
	unitPrice, _ := decodeAmount(m.UnitPrice)
	total, _ := decodeAmount(m.Total)

	status, ok := entity.ParseOrderStatus(m.Status)
	if !ok {
		status = entity.OrderStatus(m.Status)
	}

	o := &entity.Order{
		ID:              id,
		BusinessID:      businessID,
		ItemID:          m.ItemID,
		ItemName:        m.ItemName,
		UnitPrice:       unitPrice,
		Quantity:        m.Quantity,
		Total:           total,
		BuyerName:       m.BuyerName,
		BuyerEmail:      m.BuyerEmail,
		Notes:           m.Notes,
		Status:          status,
		StripeSessionID: m.StripeSessionID,
		CreatedAt:       m.CreatedAt,
		PaidAt:          m.PaidAt,
	}
	if m.UpdatedAt != nil {
		o.UpdatedAt = *m.UpdatedAt
	}
	if a := m.ShippingAddress; a != nil {
		o.ShippingAddress = &entity.Address{
			Address1:   a.Address1,
			Address2:   a.Address2,
			City:       a.City,
			Region:     a.Region,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		}
	}

	return o
}

// orderPatch builds a merge write that always stamps updatedAt with the server time.
func orderPatch(fields map[string]any) map[string]any {
	fields[model.FieldUpdatedAt] = gfirestore.ServerTimestamp

	return fields
}
