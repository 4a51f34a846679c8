package services

import (
	"errors"

	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/docgen"
	"github.com/Danielrod221/agriwater-live-app/internal/esign"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/Danielrod221/agriwater-live-app/internal/payment"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Listing{}, &models.Offer{})
	err = db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Offer{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func testConfig() *config.Config {
	return &config.Config{
		SessionSecret:  "test-secret",
		BaseURL:        "https://awm.test",
		PlatformFeeBps: 350,
	}
}

// fakeProvider records payment-platform calls so tests can assert a
// rejected purchase never reached the platform.
type fakeProvider struct {
	chargesEnabled bool
	statusErr      error

	createAccountCalls int
	statusCalls        int
	checkoutCalls      int

	checkoutURL string
	lastParams  payment.CheckoutParams
}

func (f *fakeProvider) CreateAccount(email string) (string, error) {
	f.createAccountCalls++
	return "acct_test123", nil
}

func (f *fakeProvider) OnboardingLink(accountID, refreshURL, returnURL string) (string, error) {
	return "https://connect.test/onboarding/" + accountID, nil
}

func (f *fakeProvider) GetAccountStatus(accountID string) (*payment.AccountStatus, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &payment.AccountStatus{ChargesEnabled: f.chargesEnabled}, nil
}

func (f *fakeProvider) CreateCheckoutSession(params payment.CheckoutParams) (string, error) {
	f.checkoutCalls++
	f.lastParams = params
	if f.checkoutURL == "" {
		return "https://checkout.test/session", nil
	}
	return f.checkoutURL, nil
}

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(toEmail, subject, htmlContent string) error {
	f.sent = append(f.sent, sentMail{to: toEmail, subject: subject})
	return f.sendErr
}

type fakeSigner struct {
	calls   int
	lastDoc string
	sendErr error
}

func (f *fakeSigner) SendForSignature(documentPath string, seller, buyer esign.Party) error {
	f.calls++
	f.lastDoc = documentPath
	return f.sendErr
}

// setupServices wires the service layer with fakes and returns them for
// assertions.
func setupServices(agreementsDir string) (*fakeProvider, *fakeMailer, *fakeSigner) {
	provider := &fakeProvider{}
	mailer := &fakeMailer{}
	signer := &fakeSigner{}
	Init(testConfig(), provider, mailer, signer, docgen.NewGenerator(agreementsDir), nil)
	return provider, mailer, signer
}

var errProviderDown = errors.New("provider unavailable")
