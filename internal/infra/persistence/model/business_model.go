package model

import "time"

// Collection and field paths of business documents.
const (
	CollectionBusinesses = "businesses"
	CollectionItems      = "items"
	CollectionOrders     = "orders"
	CollectionSlugs      = "slugs"

	FieldPayment                = "payment"
	FieldPaymentStripeAccountID = "payment.stripeAccountId"
	FieldSlug                   = "slug"
)

// BusinessModel is the Firestore shape of 'businesses/{businessId}'.
// Theming and catalog fields are owned by the storefront editor and not mapped.
type BusinessModel struct {
	Name         string       `firestore:"name"`
	Description  string       `firestore:"description"`
	CompanyEmail string       `firestore:"companyEmail"`
	OwnerEmail   string       `firestore:"ownerEmail"`
	OwnerUID     string       `firestore:"ownerUid"`
	Slug         string       `firestore:"slug"`
	Payment      PaymentModel `firestore:"payment"`
	CreatedAt    time.Time    `firestore:"createdAt"`
}

// PaymentModel is the nested 'payment' map of a business.
type PaymentModel struct {
	StripeAccountID    string `firestore:"stripeAccountId"`
	ChargesEnabled     bool   `firestore:"chargesEnabled"`
	PayoutsEnabled     bool   `firestore:"payoutsEnabled"`
	OnboardingComplete bool   `firestore:"onboardingComplete"`
	Method             string `firestore:"method"`
}
