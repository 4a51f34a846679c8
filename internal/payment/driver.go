package payment

// AccountStatus reports the live state of a seller's connected account.
type AccountStatus struct {
	// ChargesEnabled is true once the platform can route charges to the
	// account; listings are only purchasable from sellers with this set.
	ChargesEnabled bool
}

// CheckoutParams describes one hosted checkout session. All money is in
// integer cents.
type CheckoutParams struct {
	// ProductName is the line-item label shown on the hosted page.
	ProductName string
	TotalCents  int64
	// ApplicationFeeCents is the platform's cut, deducted before the payout
	// to DestinationAccountID.
	ApplicationFeeCents  int64
	DestinationAccountID string
	SuccessURL           string
	CancelURL            string
}

// Provider is the interface to the payment platform. Services guard and
// compute before calling it, so a rejected purchase never reaches the
// platform at all.
type Provider interface {
	// CreateAccount creates a connected account for a seller and returns
	// its id.
	CreateAccount(email string) (string, error)

	// OnboardingLink returns a time-limited URL where the seller completes
	// account onboarding.
	OnboardingLink(accountID, refreshURL, returnURL string) (string, error)

	// GetAccountStatus fetches the account's current capabilities.
	GetAccountStatus(accountID string) (*AccountStatus, error)

	// CreateCheckoutSession creates a hosted checkout session and returns
	// the URL to redirect the buyer to.
	CreateCheckoutSession(params CheckoutParams) (string, error)
}
