package stripeconnect

import (
	"github.com/Danielrod221/agriwater-live-app/internal/payment"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/accountlink"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// Driver implements payment.Provider on Stripe Connect with standard
// accounts and destination charges.
type Driver struct{}

func NewDriver(secretKey string) *Driver {
	stripe.Key = secretKey
	return &Driver{}
}

func (d *Driver) CreateAccount(email string) (string, error) {
	acct, err := account.New(&stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeStandard)),
		Email: stripe.String(email),
	})
	if err != nil {
		return "", err
	}
	return acct.ID, nil
}

func (d *Driver) OnboardingLink(accountID, refreshURL, returnURL string) (string, error) {
	link, err := accountlink.New(&stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	})
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

func (d *Driver) GetAccountStatus(accountID string) (*payment.AccountStatus, error) {
	acct, err := account.GetByID(accountID, nil)
	if err != nil {
		return nil, err
	}
	return &payment.AccountStatus{ChargesEnabled: acct.ChargesEnabled}, nil
}

func (d *Driver) CreateCheckoutSession(params payment.CheckoutParams) (string, error) {
	sess, err := session.New(&stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.ProductName),
					},
					UnitAmount: stripe.Int64(params.TotalCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(params.ApplicationFeeCents),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(params.DestinationAccountID),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	})
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
