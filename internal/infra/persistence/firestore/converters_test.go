package firestore

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	gfirestore "cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    string
		wantErr bool
	}{
		{name: "missing", raw: nil, want: "0"},
		{name: "integer", raw: int64(12), want: "12"},
		{name: "double", raw: 19.99, want: "19.99"},
		{name: "numeric string", raw: " 4.50 ", want: "4.5"},
		{name: "blank string", raw: "", want: "0"},
		{name: "garbage string", raw: "abc", wantErr: true},
		{name: "unsupported type", raw: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAmount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestToItemDomain(t *testing.T) {
	t.Run("string price", func(t *testing.T) {
		item, err := toItemDomain("biz-1", "item-1", &model.ItemModel{Name: "Mug", Price: "12.5", RequireAddress: true})

		require.NoError(t, err)
		assert.Equal(t, "biz-1", item.BusinessID)
		assert.Equal(t, "item-1", item.ID)
		assert.Equal(t, int64(1250), item.UnitAmount())
		assert.True(t, item.RequireAddress)
	})

	t.Run("non numeric price", func(t *testing.T) {
		_, err := toItemDomain("biz-1", "item-1", &model.ItemModel{Name: "Mug", Price: "free"})

		assert.ErrorIs(t, err, repository.ErrInvalidItemPrice)
	})
}

func TestPaymentMergeData(t *testing.T) {
	accountID := "acct_1"
	method := entity.PaymentMethodStripe

	t.Run("only provided fields are written", func(t *testing.T) {
		data := paymentMergeData(&entity.PaymentUpdate{StripeAccountID: &accountID, Method: &method})

		assert.Equal(t, map[string]any{
			"payment": map[string]any{
				"stripeAccountId": "acct_1",
				"method":          "Stripe",
			},
		}, data)
	})

	t.Run("flags", func(t *testing.T) {
		data := paymentMergeData(&entity.PaymentUpdate{Flags: &entity.PaymentFlags{ChargesEnabled: true}})

		assert.Equal(t, map[string]any{
			"payment": map[string]any{
				"chargesEnabled":     true,
				"payoutsEnabled":     false,
				"onboardingComplete": false,
			},
		}, data)
	})
}

func TestOrderConversionRoundTrip(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order := &entity.Order{
		ItemID:     "item-1",
		ItemName:   "Mug",
		UnitPrice:  decimal.RequireFromString("12.50"),
		Quantity:   2,
		Total:      decimal.RequireFromString("25"),
		BuyerName:  "Ada",
		BuyerEmail: "ada@example.com",
		ShippingAddress: &entity.Address{
			Address1: "1 Main St", City: "Springfield", Region: "IL", PostalCode: "62701", Country: "US",
		},
		Status: entity.OrderStatusPaid,
		PaidAt: &paidAt,
	}

	m := fromOrderDomain(order)
	assert.Nil(t, m.UpdatedAt)
	assert.Equal(t, 12.5, m.UnitPrice)

	back := toOrderDomain("biz-1", "order-1", m)
	assert.Equal(t, "order-1", back.ID)
	assert.Equal(t, "biz-1", back.BusinessID)
	assert.True(t, order.Total.Equal(back.Total))
	assert.Equal(t, order.ShippingAddress, back.ShippingAddress)
	assert.Equal(t, entity.OrderStatusPaid, back.Status)
	assert.Equal(t, &paidAt, back.PaidAt)
}

func TestToOrderDomainDefaultsMissingStatus(t *testing.T) {
	o := toOrderDomain("biz-1", "order-1", &model.OrderModel{})

	assert.Equal(t, entity.OrderStatusRequested, o.Status)
	assert.True(t, o.Total.IsZero())
}

func TestOrderPatchStampsUpdatedAt(t *testing.T) {
	patch := orderPatch(map[string]any{model.FieldStatus: "done"})

	assert.Equal(t, gfirestore.ServerTimestamp, patch[model.FieldUpdatedAt])
	assert.Equal(t, "done", patch[model.FieldStatus])
}
