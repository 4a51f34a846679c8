package auth

import (
	"errors"
	"net/http"

	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/gin-gonic/gin"
)

type SignupInput struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Phone         string `json:"phone"`
	WaterDistrict string `json:"water_district"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	StripeAccountID string `json:"stripe_account_id,omitempty"`
	Token           string `json:"token"`
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionTTL.Seconds()), "/", "", true, true)
}

// Signup godoc
// @Summary Create an account
// @Description Register with name, email, password, phone, and water district
// @Tags auth
// @Accept json
// @Produce json
// @Param input body SignupInput true "Signup Input"
// @Success 201 {object} utils.Response{data=SessionResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	var input SignupInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.RegisterUser(services.RegisterInput{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Phone:         input.Phone,
		WaterDistrict: input.WaterDistrict,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create account"))
		return
	}

	token, err := services.IssueSession(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Could not establish session"))
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Account created", SessionResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Token: token,
	}))
}

// Login godoc
// @Summary Log in
// @Description Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Login Input"
// @Success 200 {object} utils.Response{data=SessionResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, u, err := services.LoginUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Login failed. Check your email and password."))
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", SessionResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		StripeAccountID: u.StripeAccountID,
		Token:           token,
	}))
}

// Logout godoc
// @Summary Log out
// @Description Revoke the current session and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/logout [post]
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			return
		}

		remaining := utils.TokenRemaining(tokenString, cfg.SessionSecret)
		if err := services.RevokeSession(tokenString, remaining); err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to log out"))
			return
		}

		c.SetCookie(utils.SessionCookieName, "", -1, "/", "", true, true)
		c.JSON(http.StatusOK, utils.NewSuccessResponse("You have been logged out.", nil))
	}
}
