package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusRequested      OrderStatus = "requested"
	OrderStatusPendingPayment OrderStatus = "pending-payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusInProgress     OrderStatus = "in-progress"
	OrderStatusDone           OrderStatus = "done"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusRequested:      0,
	OrderStatusPendingPayment: 1,
	OrderStatusPaid:           2,
	OrderStatusInProgress:     3,
	OrderStatusDone:           4,
}

// ParseOrderStatus validates a wire value. Empty input yields requested,
// matching orders written before status was tracked.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	if s == "" {
		return OrderStatusRequested, true
	}
	status := OrderStatus(s)
	_, ok := orderStatusRank[status]

	return status, ok
}

// IsSettled reports whether payment has been received or the order moved past it.
func (s OrderStatus) IsSettled() bool {
	return orderStatusRank[s] >= orderStatusRank[OrderStatusPaid]
}

// CanAdvanceManually reports whether an owner may move an order from s to next.
// Owners only ever push orders forward into in-progress or done, and never
// out of pending-payment since that belongs to the payment flow.
func (s OrderStatus) CanAdvanceManually(next OrderStatus) bool {
	if next != OrderStatusInProgress && next != OrderStatusDone {
		return false
	}
	if s == OrderStatusPendingPayment {
		return false
	}

	return orderStatusRank[next] > orderStatusRank[s]
}

// Address is a buyer shipping address.
type Address struct {
	Address1   string `json:"address1" validate:"required"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Order is a purchase of one item placed against a business.
type Order struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"businessId"`
	ItemID          string          `json:"itemId"`
	ItemName        string          `json:"itemName"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int64           `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
	BuyerName       string          `json:"buyerName"`
	BuyerEmail      string          `json:"buyerEmail"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Status          OrderStatus     `json:"status"`
	StripeSessionID string          `json:"stripeSessionId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
}
