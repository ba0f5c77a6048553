package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/services"
)

// Profile returns the caller's resolved identity and role, the single source
// dashboards use to pick which view to render.
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"user_id":   claims.UserID,
			"email":     claims.Email,
			"fullname":  claims.Fullname,
			"role":      claims.GetSafeRole(),
			"photo_url": claims.PhotoURL,
			"is_admin":  claims.IsAdmin(),
			"is_guide":  claims.IsGuide(),
		}, ""))
	}
}

func UpdateProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		// Role changes go through the admin endpoint, never through here.
		delete(fields, "role")
		delete(fields, "id")
		delete(fields, "email")

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid user ID in token"))
			return
		}

		accessToken := c.GetString("access_token")
		updated, err := u.UpdateUser(c.Request.Context(), fields, userID, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "profile updated"))
	}
}

func parsePagination(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}

// ListUsers is the admin users dashboard: paginated, with optional name or
// email search and a role filter.
func ListUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		search := c.Query("search")
		role := c.Query("role")

		accessToken := c.GetString("access_token")
		users, total, err := u.ListUsers(c.Request.Context(), search, role, offset, limit, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(users, page, limit, total))
	}
}

// ListGuides is public: package details and the home page pick guides from it.
func ListGuides(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		guides, total, err := u.ListGuides(c.Request.Context(), offset, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(guides, page, limit, total))
	}
}

func UpdateUserRole(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("email is required"))
			return
		}

		var req struct {
			Role string `json:"role" binding:"required,oneof=user guide admin"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		accessToken := c.GetString("access_token")
		updated, err := u.UpdateRoleByEmail(c.Request.Context(), email, req.Role, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "role updated"))
	}
}
