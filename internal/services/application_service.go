package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kamrul-dev/roamio/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationService struct {
	appRepo     models.ApplicationRepo
	userService *UserService
}

func NewApplicationService(appRepo models.ApplicationRepo, userService *UserService) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		userService: userService,
	}
}

func (as *ApplicationService) Apply(ctx context.Context, app *models.GuideApplication) (*models.GuideApplication, error) {
	if err := models.Validate.Struct(app); err != nil {
		return nil, fmt.Errorf("invalid application data provided: %v", err)
	}

	// Guides and admins have nothing to apply for.
	applicant, err := as.userService.GetUserByEmail(ctx, app.ApplicantEmail)
	if err == nil && applicant.SafeRole() != models.RoleUser {
		return nil, fmt.Errorf("%s already holds the %s role", app.ApplicantEmail, applicant.SafeRole())
	}

	app.AppliedAt = time.Now()
	return as.appRepo.CreateApplication(ctx, app)
}

func (as *ApplicationService) ListApplications(ctx context.Context) ([]*models.GuideApplication, error) {
	return as.appRepo.ListApplications(ctx)
}

// Accept promotes the applicant to guide, then removes the application. The
// promotion happens first: losing an already-decided application is
// recoverable, a promoted user without the role is not.
func (as *ApplicationService) Accept(ctx context.Context, id primitive.ObjectID, accessToken string) (*models.User, error) {
	app, err := as.appRepo.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	promoted, err := as.userService.UpdateRoleByEmail(ctx, app.ApplicantEmail, models.RoleGuide, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to promote applicant: %v", err)
	}

	if err := as.appRepo.DeleteApplication(ctx, id); err != nil {
		return nil, fmt.Errorf("applicant promoted but application cleanup failed: %v", err)
	}

	return promoted, nil
}

func (as *ApplicationService) Reject(ctx context.Context, id primitive.ObjectID) error {
	if _, err := as.appRepo.GetApplicationByID(ctx, id); err != nil {
		return err
	}
	return as.appRepo.DeleteApplication(ctx, id)
}
