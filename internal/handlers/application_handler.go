package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/services"
)

func ApplyAsGuide(a *services.ApplicationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var app models.GuideApplication
		if err := c.ShouldBindJSON(&app); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		app.ApplicantName = claims.Fullname
		app.ApplicantEmail = claims.Email

		created, err := a.Apply(c.Request.Context(), &app)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "application submitted"))
	}
}

func ListApplications(a *services.ApplicationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apps, err := a.ListApplications(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(apps, ""))
	}
}

// AcceptApplication promotes the applicant to guide and removes the
// application.
func AcceptApplication(a *services.ApplicationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		accessToken := c.GetString("access_token")
		promoted, err := a.Accept(c.Request.Context(), id, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(promoted, "applicant promoted to tour guide"))
	}
}

func RejectApplication(a *services.ApplicationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		if err := a.Reject(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "application rejected"))
	}
}
