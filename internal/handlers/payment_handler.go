package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/payments"
	"github.com/kamrul-dev/roamio/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePaymentIntent opens an intent for a pending booking and hands back
// the client secret the card widget needs.
func CreatePaymentIntent(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var req struct {
			BookingID string `json:"booking_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		bookingID, err := primitive.ObjectIDFromHex(req.BookingID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid booking_id format"))
			return
		}

		intent, err := p.CreateIntent(c.Request.Context(), bookingID, claims.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"intent_id":     intent.ID,
			"client_secret": intent.ClientSecret,
		}, ""))
	}
}

// ConfirmPayment confirms the intent with the tokenized card and records the
// payment. Card failures come back as 402 with the provider's own message so
// the form can show it inline and let the traveler retry.
func ConfirmPayment(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var req struct {
			BookingID       string `json:"booking_id" binding:"required"`
			IntentID        string `json:"intent_id" binding:"required"`
			PaymentMethodID string `json:"payment_method_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		bookingID, err := primitive.ObjectIDFromHex(req.BookingID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid booking_id format"))
			return
		}

		record, err := p.ConfirmAndRecord(c.Request.Context(), bookingID, req.IntentID, req.PaymentMethodID, claims.Fullname, claims.Email)
		if err != nil {
			var declined *payments.DeclinedError
			if errors.As(err, &declined) {
				c.JSON(http.StatusPaymentRequired, helpers.ErrorResponse(declined.Msg))
				return
			}
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(record, "payment successful"))
	}
}
