package stripe

import (
	"context"

	"storefront/internal/domain/service"

	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const accountLinkTypeOnboarding = "account_onboarding"

// provider implements service.PaymentProvider with one Stripe API client.
type provider struct {
	api           *client.API
	webhookSecret string
}

// PlatformAccountID returns the account that owns the secret key.
func (p *provider) PlatformAccountID(_ context.Context) (string, error) {
	account, err := p.api.Accounts.Get()
	if err != nil {
		return "", wrapStripeError("retrieve platform account", err)
	}

	return account.ID, nil
}

// CreateConnectedAccount creates an express account for an individual seller.
func (p *provider) CreateConnectedAccount(ctx context.Context, email, idempotencyKey string) (string, error) {
	params := &stripego.AccountParams{
		Type:         stripego.String(string(stripego.AccountTypeExpress)),
		BusinessType: stripego.String(string(stripego.AccountBusinessTypeIndividual)),
	}
	if email != "" {
		params.Email = stripego.String(email)
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	account, err := p.api.Accounts.New(params)
	if err != nil {
		return "", wrapStripeError("create connected account", err)
	}

	return account.ID, nil
}

// RetrieveAccount fetches a connected account by ID.
func (p *provider) RetrieveAccount(ctx context.Context, accountID string) (*service.ConnectedAccount, error) {
	params := &stripego.AccountParams{}
	params.Context = ctx

	account, err := p.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, wrapStripeError("retrieve account", err)
	}

	return toConnectedAccount(account), nil
}

// CreateOnboardingLink creates a single-use account onboarding link.
func (p *provider) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	params := &stripego.AccountLinkParams{
		Account:    stripego.String(accountID),
		RefreshURL: stripego.String(refreshURL),
		ReturnURL:  stripego.String(returnURL),
		Type:       stripego.String(accountLinkTypeOnboarding),
	}
	params.Context = ctx

	link, err := p.api.AccountLinks.New(params)
	if err != nil {
		return "", wrapStripeError("create account link", err)
	}

	return link.URL, nil
}

// CreateDashboardLink creates an express dashboard login link.
func (p *provider) CreateDashboardLink(ctx context.Context, accountID string) (string, error) {
	params := &stripego.LoginLinkParams{Account: stripego.String(accountID)}
	params.Context = ctx

	link, err := p.api.LoginLinks.New(params)
	if err != nil {
		return "", wrapStripeError("create login link", err)
	}

	return link.URL, nil
}

// CreateCheckoutSession creates a payment-mode session whose funds are
// transferred to the destination account.
func (p *provider) CreateCheckoutSession(ctx context.Context, in *service.CheckoutSessionParams) (*service.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL: stripego.String(in.SuccessURL),
		CancelURL:  stripego.String(in.CancelURL),
		PaymentIntentData: &stripego.CheckoutSessionPaymentIntentDataParams{
			TransferData: &stripego.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripego.String(in.DestinationAccountID),
			},
		},
	}
	for _, item := range in.LineItems {
		productData := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripego.String(item.Name),
		}
		if item.ImageURL != "" {
			productData.Images = stripego.StringSlice([]string{item.ImageURL})
		}
		params.LineItems = append(params.LineItems, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripego.String(in.Currency),
				ProductData: productData,
				UnitAmount:  stripego.Int64(item.UnitAmount),
			},
			Quantity: stripego.Int64(item.Quantity),
		})
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(in.CustomerEmail)
	}
	for key, value := range in.Metadata {
		params.AddMetadata(key, value)
	}
	params.Context = ctx

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, wrapStripeError("create checkout session", err)
	}

	return &service.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func toConnectedAccount(account *stripego.Account) *service.ConnectedAccount {
	return &service.ConnectedAccount{
		ID:               account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	}
}
