package model

import "time"

// Order field names written by partial updates.
const (
	FieldStatus          = "status"
	FieldStripeSessionID = "stripeSessionId"
	FieldPaidAt          = "paidAt"
	FieldUpdatedAt       = "updatedAt"
	FieldCreatedAt       = "createdAt"
)

// OrderModel is the Firestore shape of 'businesses/{businessId}/orders/{orderId}'.
// Amounts are stored as numbers in whole currency units.
type OrderModel struct {
	ItemID          string        `firestore:"itemId"`
	ItemName        string        `firestore:"itemName"`
	UnitPrice       any           `firestore:"unitPrice"`
	Quantity        int64         `firestore:"quantity"`
	Total           any           `firestore:"total"`
	BuyerName       string        `firestore:"buyerName"`
	BuyerEmail      string        `firestore:"buyerEmail"`
	ShippingAddress *AddressModel `firestore:"shippingAddress,omitempty"`
	Notes           string        `firestore:"notes"`
	Status          string        `firestore:"status"`
	StripeSessionID string        `firestore:"stripeSessionId,omitempty"`
	CreatedAt       time.Time     `firestore:"createdAt,serverTimestamp"`
	UpdatedAt       *time.Time    `firestore:"updatedAt,omitempty"`
	PaidAt          *time.Time    `firestore:"paidAt,omitempty"`
}

// AddressModel is the nested shipping address of an order.
type AddressModel struct {
	Address1   string `firestore:"address1"`
	Address2   string `firestore:"address2"`
	City       string `firestore:"city"`
	Region     string `firestore:"region"`
	PostalCode string `firestore:"postalCode"`
	Country    string `firestore:"country"`
}
