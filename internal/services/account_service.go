package services

import (
	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
)

// EnsureConnectedAccount returns the user's connected payment account id,
// creating one on the payment platform and persisting it first if the user
// has none yet.
func EnsureConnectedAccount(userID uint) (string, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return "", err
	}

	if user.StripeAccountID != "" {
		return user.StripeAccountID, nil
	}

	accountID, err := Payments.CreateAccount(user.Email)
	if err != nil {
		return "", err
	}

	err = database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("stripe_account_id", accountID).Error
	if err != nil {
		return "", err
	}

	return accountID, nil
}

// OnboardingURL returns the time-limited hosted onboarding link for a
// connected account. Refresh points back at the authorize route so an
// expired link restarts the flow.
func OnboardingURL(accountID string) (string, error) {
	return Payments.OnboardingLink(accountID,
		Cfg.BaseURL+"/api/v1/stripe/authorize",
		Cfg.BaseURL+"/api/v1/stripe/return")
}

// AccountChargesEnabled checks, live against the payment platform, whether
// the account can receive charges. Activation is never cached; onboarding
// completes on the platform's side without a webhook.
func AccountChargesEnabled(accountID string) bool {
	if accountID == "" {
		return false
	}
	status, err := Payments.GetAccountStatus(accountID)
	if err != nil {
		return false
	}
	return status.ChargesEnabled
}
