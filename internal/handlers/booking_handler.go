package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createBookingRequest struct {
	PackageID  string    `json:"package_id" binding:"required"`
	GuideEmail string    `json:"guide_email" binding:"required,email"`
	TourDate   time.Time `json:"tour_date" binding:"required"`
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		packageID, err := primitive.ObjectIDFromHex(req.PackageID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid package_id format"))
			return
		}

		booking := &models.Booking{
			PackageID:    packageID,
			TouristName:  claims.Fullname,
			TouristEmail: claims.Email,
			GuideEmail:   req.GuideEmail,
			TourDate:     req.TourDate,
		}

		created, err := b.CreateBooking(c.Request.Context(), booking)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "booking created"))
	}
}

// ListMyBookings returns the caller's bookings, newest first. The status of
// each row tells the client which actions to render; see Booking.Actions.
func ListMyBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		bookings, err := b.ListBookingsByTourist(c.Request.Context(), claims.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(bookings, ""))
	}
}

// ListAssignedBookings is the guide's queue of tours to review.
func ListAssignedBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		bookings, err := b.ListBookingsByGuide(c.Request.Context(), claims.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(bookings, ""))
	}
}

func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		if err := b.CancelBooking(c.Request.Context(), id, claims.Email, claims.IsAdmin()); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "booking cancelled"))
	}
}

func DecideBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var req struct {
			Status string `json:"status" binding:"required,oneof=accepted rejected"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.DecideBooking(c.Request.Context(), id, req.Status, claims.Email, claims.IsAdmin())
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(booking, "booking "+req.Status))
	}
}
