package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (interface{}, error)
	AuthenticateUser(ctx context.Context, email, password string) (interface{}, error)
	RefreshToken(ctx context.Context, refreshToken string) (interface{}, error)
	SendPasswordReset(ctx context.Context, email string) error
	GetUser(ctx context.Context, id uuid.UUID, accessToken string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context, search, role string, offset, limit int, accessToken string) ([]*User, int, error)
	UpdateUser(ctx context.Context, fields map[string]interface{}, userid uuid.UUID, accessToken string) (*User, error)
	UpdateRoleByEmail(ctx context.Context, email, role, accessToken string) (*User, error)
}

const profileColumns = "id,email,fullname,role,bio,phone_number,photo_url,created_at,updated_at"

func ConvertToUser(raw map[string]interface{}) (*User, error) {
	userBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raw user: %v", err)
	}

	user := &User{}
	if err := json.Unmarshal(userBytes, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal to user struct: %v", err)
	}

	return user, nil
}

func (su *SupabaseRepo) CreateUser(ctx context.Context, user *User) (interface{}, error) {
	signed := types.SignupRequest{
		Email:    user.Email,
		Password: user.Password,
		Data: map[string]interface{}{
			"fullname":  user.FullName,
			"photo_url": user.PhotoURL,
		},
	}

	res, err := su.supabaseClient.Auth.Signup(signed)
	if err != nil {
		if strings.Contains(err.Error(), "User already registered") {
			return nil, fmt.Errorf("email already in use")
		}
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, fmt.Errorf("user already exists")
		}
		return nil, fmt.Errorf("failed to create user")
	}
	return res, nil
}

func (su *SupabaseRepo) AuthenticateUser(ctx context.Context, email, password string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %v", err)
	}
	return resp, nil
}

// SendPasswordReset asks the identity provider to email a reset link. The
// provider responds identically whether or not the address exists.
func (su *SupabaseRepo) SendPasswordReset(ctx context.Context, email string) error {
	if err := su.supabaseClient.Auth.Recover(types.RecoverRequest{Email: email}); err != nil {
		return fmt.Errorf("failed to send password reset email: %v", err)
	}
	return nil
}

func (su *SupabaseRepo) GetUser(ctx context.Context, id uuid.UUID, accessToken string) (*User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	raw, status, err := client.From(ProfileTable).
		Select(profileColumns, "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("postgrest error: status=%d body=%s err=%v", status, string(raw), err)
		}
		return nil, fmt.Errorf("failed to get user by ID: %v", err)
	}

	// Supabase returns an array even for single results
	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user rows: %v", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user not found")
	}
	if len(users) > 1 {
		return nil, fmt.Errorf("multiple users found for ID %s", id)
	}

	return &users[0], nil
}

func (su *SupabaseRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}

	raw, _, err := su.supabaseClient.From(ProfileTable).
		Select(profileColumns, "", false).
		Eq("email", email).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %v", err)
	}

	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user rows: %v", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user not found")
	}

	return &users[0], nil
}

func (su *SupabaseRepo) ListUsers(ctx context.Context, search, role string, offset, limit int, accessToken string) ([]*User, int, error) {
	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	query := client.From(ProfileTable).Select(profileColumns, "exact", false)
	if role != "" {
		query = query.Eq("role", role)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Or(fmt.Sprintf("fullname.ilike.%s,email.ilike.%s", pattern, pattern), "")
	}

	raw, count, err := query.Range(offset, offset+limit-1, "").Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %v", err)
	}

	var users []*User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal user rows: %v", err)
	}

	return users, int(count), nil
}

func (su *SupabaseRepo) UpdateUser(ctx context.Context, fields map[string]interface{}, userid uuid.UUID, accessToken string) (*User, error) {
	if userid == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	raw, count, err := client.From(ProfileTable).
		Update(fields, "", "exact").
		Eq("id", userid.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no user found to update")
	}

	var rawUsers []map[string]interface{}
	if err := json.Unmarshal(raw, &rawUsers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %v", err)
	}
	if len(rawUsers) == 0 {
		return nil, fmt.Errorf("no user data returned after update")
	}

	return ConvertToUser(rawUsers[0])
}

// UpdateRoleByEmail is the admin promotion path (accepting a tour-guide
// application, or direct role management from the users dashboard).
func (su *SupabaseRepo) UpdateRoleByEmail(ctx context.Context, email, role, accessToken string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	switch role {
	case RoleUser, RoleGuide, RoleAdmin:
	default:
		return nil, fmt.Errorf("unsupported role: %s", role)
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	raw, count, err := client.From(ProfileTable).
		Update(map[string]interface{}{"role": role}, "", "exact").
		Eq("email", email).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no user found for email %s", email)
	}

	var rawUsers []map[string]interface{}
	if err := json.Unmarshal(raw, &rawUsers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %v", err)
	}
	if len(rawUsers) == 0 {
		return nil, fmt.Errorf("no user data returned after role update")
	}

	return ConvertToUser(rawUsers[0])
}
