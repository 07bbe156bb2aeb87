// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"zeefreeze/models"
	"zeefreeze/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// VerifyPasswordComplexity enforces the minimum password policy: at least 8
// characters with one letter and one digit.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

// Register creates a new client account, issues a token, and stores its hash.
// Admin accounts are created through the admin surface, never via signup.
func (s *DefaultUserService) Register(reg models.UserRegistration) (*models.User, error) {
	if reg.Email == "" || reg.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if reg.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := VerifyPasswordComplexity(reg.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists", reg.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	usr := models.User{
		ID:          uuid.New().String(),
		Name:        reg.Name,
		Email:       reg.Email,
		PhoneNumber: reg.PhoneNumber,
		Role:        models.RoleClient,
		Company:     reg.Company,
		Address:     reg.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	usr.Security.PasswordHash = string(hashedPassword)

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	usr.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	usr.Security.Token = token
	usr.Security.PasswordHash = ""
	return &usr, nil
}

// Authenticate verifies credentials, rotates the token hash, and returns the
// account with a fresh bearer token attached.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	usr.Security.TokenHash = utils.HashToken(token)
	usr.UpdatedAt = time.Now()
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("failed to update user with token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}

	usr.Security.Token = token
	usr.Security.PasswordHash = ""
	return usr, nil
}

// RevokeAuthToken clears the stored token hash and the cached auth entry.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return fmt.Errorf("user with id %s not found", userID)
	}

	usr.Security.TokenHash = ""
	usr.UpdatedAt = time.Now()
	if err := s.Repo.Update(usr); err != nil {
		return fmt.Errorf("failed to revoke user auth token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}
	return nil
}
