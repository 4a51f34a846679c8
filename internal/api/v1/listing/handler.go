package listing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Danielrod221/agriwater-live-app/internal/middleware"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/gin-gonic/gin"
)

func listingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid listing id"))
		return 0, false
	}
	return uint(id), true
}

// Marketplace godoc
// @Summary List active marketplace listings
// @Tags listings
// @Produce json
// @Success 200 {object} utils.Response{data=[]ListingResponse}
// @Router /listings [get]
func Marketplace(c *gin.Context) {
	listings, err := services.MarketplaceListings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load marketplace"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Marketplace listings", ToResponseList(listings)))
}

// MyListings godoc
// @Summary List the caller's own listings
// @Tags listings
// @Produce json
// @Success 200 {object} utils.Response{data=[]ListingResponse}
// @Router /listings/mine [get]
func MyListings(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	listings, err := services.ListingsBySeller(session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load listings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Your listings", ToResponseList(listings)))
}

// Create godoc
// @Summary Create a lease listing
// @Tags listings
// @Accept json
// @Produce json
// @Param input body ListingInput true "Listing Input"
// @Success 201 {object} utils.Response{data=ListingResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /listings [post]
func Create(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var input ListingInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	l, err := services.CreateListing(session.UserID, input.toService())
	if err != nil {
		if errors.Is(err, services.ErrPaymentAccountRequired) {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create listing"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Your lease listing has been created successfully!", ToResponse(l)))
}

// Get godoc
// @Summary Fetch one of the caller's listings for editing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} utils.Response{data=ListingResponse}
// @Failure 404 {object} utils.Response
// @Router /listing/{id} [get]
func Get(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := listingID(c)
	if !ok {
		return
	}

	l, err := services.GetOwnListing(session.UserID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, services.ErrListingNotFound.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Listing", ToResponse(l)))
}

// Update godoc
// @Summary Edit a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param input body ListingInput true "Listing Input"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /listing/{id} [put]
func Update(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := listingID(c)
	if !ok {
		return
	}

	var input ListingInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if err := services.UpdateListing(session.UserID, id, input.toService()); err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update listing"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Your listing has been updated successfully!", nil))
}

// Delete godoc
// @Summary Delete a listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /listing/{id} [delete]
func Delete(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := listingID(c)
	if !ok {
		return
	}

	if err := services.DeleteListing(session.UserID, id); err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete listing"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Your listing has been deleted.", nil))
}
