package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email address already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const revokedSessionPrefix = "revoked:"

type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	WaterDistrict string
}

// RegisterUser creates the account and sends the welcome email. Duplicate
// emails are not pre-checked; the unique index decides and the violation is
// translated to ErrEmailTaken.
func RegisterUser(input RegisterInput) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:          input.Name,
		Email:         input.Email,
		Password:      string(hashedPassword),
		Phone:         input.Phone,
		WaterDistrict: input.WaterDistrict,
	}

	if err := database.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	sendBestEffort(user.Email, "Welcome to Agri-Water Marketplace!",
		fmt.Sprintf("<strong>Hi %s,</strong><p>Thank you for joining AWM. You can now log in to get full access.</p>", user.Name))

	return user, nil
}

// LoginUser verifies credentials and issues a session token carrying the
// user id, display name, and the connected payment account id as of now.
func LoginUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(utils.Session{
		UserID:          user.ID,
		Name:            user.Name,
		StripeAccountID: user.StripeAccountID,
	}, Cfg.SessionSecret)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// IssueSession mints a session token for an already-authenticated user,
// used right after signup.
func IssueSession(user *models.User) (string, error) {
	return utils.GenerateSessionToken(utils.Session{
		UserID:          user.ID,
		Name:            user.Name,
		StripeAccountID: user.StripeAccountID,
	}, Cfg.SessionSecret)
}

// RevokeSession puts the token on the redis revocation list for its
// remaining lifetime.
func RevokeSession(tokenString string, remaining time.Duration) error {
	key := revokedSessionPrefix + tokenString
	return database.RedisClient.Set(database.Ctx, key, 1, remaining).Err()
}

// IsSessionRevoked reports whether a token was logged out before expiry.
func IsSessionRevoked(tokenString string) (bool, error) {
	key := revokedSessionPrefix + tokenString
	val, err := database.RedisClient.Get(database.Ctx, key).Result()
	if err != nil {
		if err.Error() == "redis: nil" { // key does not exist
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}

// sendBestEffort delivers a notification email, logging failures and never
// propagating them.
func sendBestEffort(toEmail, subject, htmlContent string) {
	if Mailer == nil {
		return
	}
	if err := Mailer.Send(toEmail, subject, htmlContent); err != nil {
		zap.L().Warn("email delivery failed",
			zap.String("to", toEmail),
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}
