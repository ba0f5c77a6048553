package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoryService struct {
	storyRepo models.StoryRepo
	cld       *cloudinary.Cloudinary
}

func NewStoryService(storyRepo models.StoryRepo, cld *cloudinary.Cloudinary) *StoryService {
	return &StoryService{
		storyRepo: storyRepo,
		cld:       cld,
	}
}

func (ss *StoryService) CreateStory(ctx context.Context, story *models.Story) (*models.Story, error) {
	if err := models.Validate.Struct(story); err != nil {
		return nil, fmt.Errorf("invalid story data provided: %v", err)
	}

	var uploadedPublicIDs []string
	if len(story.Images) > 0 && ss.cld != nil {
		urls, publicIDs, err := helpers.UploadImages(ctx, ss.cld, story.Images, helpers.StoryFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload images: %v", err)
		}
		story.Images = urls
		uploadedPublicIDs = publicIDs
	}

	now := time.Now()
	story.CreatedAt = now
	story.UpdatedAt = now
	story.Comments = []models.Comment{}

	created, err := ss.storyRepo.CreateStory(ctx, story)
	if err != nil {
		if len(uploadedPublicIDs) > 0 {
			helpers.DeleteImages(ctx, ss.cld, uploadedPublicIDs)
		}
		return nil, err
	}

	return created, nil
}

func (ss *StoryService) GetStoryByID(ctx context.Context, id primitive.ObjectID) (*models.Story, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("invalid story ID")
	}
	return ss.storyRepo.GetStoryByID(ctx, id)
}

func (ss *StoryService) ListStories(ctx context.Context, offset, limit int) ([]*models.Story, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return ss.storyRepo.ListStories(ctx, offset, limit)
}

func (ss *StoryService) ListStoriesByAuthor(ctx context.Context, email string) ([]*models.Story, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	return ss.storyRepo.ListStoriesByAuthor(ctx, email)
}

func (ss *StoryService) RandomStories(ctx context.Context, n int) ([]*models.Story, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive")
	}
	return ss.storyRepo.RandomStories(ctx, n)
}

// UpdateStory applies field edits and gallery changes. Only the author or an
// admin may edit; new images go through Cloudinary first.
func (ss *StoryService) UpdateStory(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}, addImages, removeImages []string, requesterEmail string, isAdmin bool) (*models.Story, error) {
	story, err := ss.storyRepo.GetStoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if story.AuthorEmail != requesterEmail && !isAdmin {
		return nil, fmt.Errorf("you can only edit your own stories")
	}

	// Whitelist editable fields; authorship and timestamps are not
	// client-settable.
	allowed := map[string]bool{"title": true, "content": true}
	for k := range fields {
		if !allowed[k] {
			delete(fields, k)
		}
	}

	if len(addImages) > 0 && ss.cld != nil {
		urls, _, err := helpers.UploadImages(ctx, ss.cld, addImages, helpers.StoryFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload images: %v", err)
		}
		addImages = urls
	}

	return ss.storyRepo.UpdateStory(ctx, id, fields, addImages, removeImages)
}

func (ss *StoryService) DeleteStory(ctx context.Context, id primitive.ObjectID, requesterEmail string, isAdmin bool) error {
	story, err := ss.storyRepo.GetStoryByID(ctx, id)
	if err != nil {
		return err
	}
	if story.AuthorEmail != requesterEmail && !isAdmin {
		return fmt.Errorf("you can only delete your own stories")
	}

	return ss.storyRepo.DeleteStory(ctx, id)
}

func (ss *StoryService) AddComment(ctx context.Context, storyID primitive.ObjectID, comment *models.Comment) (*models.Story, error) {
	if err := models.Validate.Struct(comment); err != nil {
		return nil, fmt.Errorf("invalid comment data provided: %v", err)
	}

	comment.CreatedAt = time.Now()
	return ss.storyRepo.AddComment(ctx, storyID, comment)
}
