// Package entity contains the core business objects of the project.
package entity

import "time"

// PaymentMethodStripe marks a business whose checkout is brokered through Stripe Connect.
const PaymentMethodStripe = "Stripe"

// Business is a storefront owned by exactly one identity-provider user.
// For businesses created after the stable-id migration, ID equals the owner's uid.
type Business struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CompanyEmail string    `json:"companyEmail"`
	OwnerEmail   string    `json:"ownerEmail"`
	OwnerUID     string    `json:"ownerUid"`
	Slug         string    `json:"slug,omitempty"`
	Payment      Payment   `json:"payment"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Payment is the cached view of the business's connected payment account.
// The flags mirror the provider and are only refreshed from it.
type Payment struct {
	StripeAccountID    string `json:"stripeAccountId,omitempty"`
	ChargesEnabled     bool   `json:"chargesEnabled"`
	PayoutsEnabled     bool   `json:"payoutsEnabled"`
	OnboardingComplete bool   `json:"onboardingComplete"`
	Method             string `json:"method,omitempty"`
}

// HasConnectedAccount reports whether a connected account has been linked.
func (b *Business) HasConnectedAccount() bool {
	return b != nil && b.Payment.StripeAccountID != ""
}

// PaymentFlags is the provider-derived status triple written by sync and webhook.
type PaymentFlags struct {
	ChargesEnabled     bool `json:"chargesEnabled"`
	PayoutsEnabled     bool `json:"payoutsEnabled"`
	OnboardingComplete bool `json:"onboardingComplete"`
}

// PaymentUpdate lists the payment fields to merge into a business.
// Nil fields are left untouched.
type PaymentUpdate struct {
	StripeAccountID *string
	Method          *string
	Flags           *PaymentFlags
}
