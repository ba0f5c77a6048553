package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	raw := strings.TrimSpace(c.Param(param))
	raw = strings.Trim(raw, "\"'")
	if raw == "" {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(param+" is required"))
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid "+param+" format"))
		return primitive.NilObjectID, false
	}
	return id, true
}

func CreatePackage(p *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var pkg models.TourPackage
		if err := c.ShouldBindJSON(&pkg); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := p.CreatePackage(c.Request.Context(), &pkg, claims.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "package created"))
	}
}

func ListPackages(p *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		packages, total, err := p.ListPackages(c.Request.Context(), offset, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(packages, page, limit, total))
	}
}

func GetPackage(p *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		pkg, err := p.GetPackageByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(pkg, ""))
	}
}

// RandomPackages feeds the home page sampler.
func RandomPackages(p *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := strconv.Atoi(c.DefaultQuery("count", "3"))
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid count parameter"))
			return
		}

		packages, err := p.RandomPackages(c.Request.Context(), n)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(packages, ""))
	}
}

func DeletePackage(p *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		if err := p.DeletePackage(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "package deleted"))
	}
}
