package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/models"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (us *UserService) CreateUser(user *models.User) (interface{}, error) {
	if err := models.Validate.Var(user.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}

	if !helpers.IsPasswordStrong(user.Password) {
		return nil, fmt.Errorf("password is not strong enough")
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	return us.userRepo.CreateUser(context.Background(), user)
}

func (us *UserService) AuthenticateUser(email, password string) (interface{}, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format: %v", err)
	}
	response, err := us.userRepo.AuthenticateUser(context.Background(), email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}

	return response, nil
}

func (us *UserService) RefreshToken(refreshToken string) (interface{}, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	response, err := us.userRepo.RefreshToken(context.Background(), refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return response, nil
}

func (us *UserService) SendPasswordReset(ctx context.Context, email string) error {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email format: %v", err)
	}
	return us.userRepo.SendPasswordReset(ctx, email)
}

func (us *UserService) GetUser(id uuid.UUID, accessToken string) (*models.User, error) {
	res, err := us.userRepo.GetUser(context.Background(), id, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return res, nil
}

func (us *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	return us.userRepo.GetUserByEmail(ctx, email)
}

// ResolveGuide confirms the email belongs to a profile carrying the guide
// role. Booking creation refuses any guide that does not resolve.
func (us *UserService) ResolveGuide(ctx context.Context, email string) (*models.User, error) {
	guide, err := us.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("guide not found: %v", err)
	}
	if guide.SafeRole() != models.RoleGuide {
		return nil, fmt.Errorf("%s is not a tour guide", email)
	}
	return guide, nil
}

func (us *UserService) ListUsers(ctx context.Context, search, role string, offset, limit int, accessToken string) ([]*models.User, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return us.userRepo.ListUsers(ctx, search, role, offset, limit, accessToken)
}

func (us *UserService) ListGuides(ctx context.Context, offset, limit int) ([]*models.User, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return us.userRepo.ListUsers(ctx, "", models.RoleGuide, offset, limit, "")
}

func (us *UserService) UpdateUser(ctx context.Context, fields map[string]interface{}, userid uuid.UUID, accessToken string) (*models.User, error) {
	now := time.Now()
	fields["updated_at"] = now

	updatedUser, err := us.userRepo.UpdateUser(ctx, fields, userid, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}

	return updatedUser, nil
}

func (us *UserService) UpdateRoleByEmail(ctx context.Context, email, role, accessToken string) (*models.User, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	updated, err := us.userRepo.UpdateRoleByEmail(ctx, email, role, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %v", err)
	}
	return updated, nil
}
