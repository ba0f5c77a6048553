package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/services"
)

func CreateStory(s *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var story models.Story
		if err := c.ShouldBindJSON(&story); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		story.AuthorName = claims.Fullname
		story.AuthorEmail = claims.Email

		created, err := s.CreateStory(c.Request.Context(), &story)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "story published"))
	}
}

func ListStories(s *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		stories, total, err := s.ListStories(c.Request.Context(), offset, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(stories, page, limit, total))
	}
}

func GetStory(s *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		story, err := s.GetStoryByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(story, ""))
	}
}

func RandomStories(s *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := strconv.Atoi(c.DefaultQuery("count", "4"))
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid count parameter"))
			return
		}

		stories, err := s.RandomStories(c.Request.Context(), n)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(stories, ""))
	}
}

func ListMyStories(s *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		stories, err := s.ListStoriesByAuthor(c.Request.Context(), claims.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(stories, ""))
	}
}

type updateStoryRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	AddImages    []string `json:"add_images"`
	RemoveImages []string `json:"remove_images"`
}

func UpdateStory(s *services.StoryService) gin.HandlerFunc {
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

		var req updateStoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		fields := map[string]interface{}{}
		if req.Title != "" {
			fields["title"] = req.Title
		}
		if req.Content != "" {
			fields["content"] = req.Content
		}

		story, err := s.UpdateStory(c.Request.Context(), id, fields, req.AddImages, req.RemoveImages, claims.Email, claims.IsAdmin())
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(story, "story updated"))
	}
}

func DeleteStory(s *services.StoryService) gin.HandlerFunc {
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

		if err := s.DeleteStory(c.Request.Context(), id, claims.Email, claims.IsAdmin()); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "story deleted"))
	}
}

func AddComment(s *services.StoryService) gin.HandlerFunc {
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
			Text string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		comment := &models.Comment{
			AuthorName:  claims.Fullname,
			AuthorEmail: claims.Email,
			Text:        req.Text,
		}

		story, err := s.AddComment(c.Request.Context(), id, comment)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(story, "comment added"))
	}
}
