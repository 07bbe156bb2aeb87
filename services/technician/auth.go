// File: services/technician/auth.go
package technician

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"
	"zeefreeze/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new technician account, issues a token, and stores its
// hash on the record. New accounts start in "pending" status until an admin
// activates them.
func (s *DefaultTechnicianService) Register(reg models.TechnicianRegistration) (*models.Technician, error) {
	if reg.Email == "" || reg.Password == "" {
		return nil, fmt.Errorf("technician email and password are required")
	}
	if reg.Name == "" {
		return nil, fmt.Errorf("technician name is required")
	}

	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing technician: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("technician with email %s already exists", reg.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	tech := models.Technician{
		ID: uuid.New().String(),
		Profile: models.TechnicianProfile{
			Name:        reg.Name,
			Email:       reg.Email,
			PhoneNumber: reg.PhoneNumber,
			Status:      "pending",
			Skills:      reg.Skills,
			Zone:        reg.Zone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	tech.Security.PasswordHash = string(hashedPassword)

	token, err := utils.GenerateToken(tech.ID, tech.Profile.Email, models.RoleTechnician, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	tech.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&tech); err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}

	tech.Security.Token = token
	tech.Security.PasswordHash = ""
	return &tech, nil
}

// Authenticate verifies credentials, rotates the stored token hash, and
// returns the technician with a fresh bearer token attached.
func (s *DefaultTechnicianService) Authenticate(email, password string) (*models.Technician, error) {
	tech, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch technician", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if tech == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tech.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if tech.Profile.Status == "suspended" {
		return nil, fmt.Errorf("account is suspended")
	}

	token, err := utils.GenerateToken(tech.ID, tech.Profile.Email, models.RoleTechnician, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tech.Security.TokenHash = utils.HashToken(token)
	tech.UpdatedAt = time.Now()
	if err := s.Repo.Update(tech); err != nil {
		return nil, fmt.Errorf("failed to update technician with token hash: %w", err)
	}

	// Invalidate any cached auth entry carrying the old token hash.
	cacheKey := utils.AuthCachePrefix + tech.ID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}

	tech.Security.Token = token
	tech.Security.PasswordHash = ""
	return tech, nil
}

// RevokeAuthToken clears the stored token hash and the cached auth entry,
// forcing a fresh sign-in.
func (s *DefaultTechnicianService) RevokeAuthToken(technicianID string) error {
	tech, err := s.Repo.GetByID(technicianID)
	if err != nil {
		return fmt.Errorf("failed to fetch technician: %w", err)
	}
	if tech == nil {
		return fmt.Errorf("technician with id %s not found", technicianID)
	}

	tech.Security.TokenHash = ""
	tech.UpdatedAt = time.Now()
	if err := s.Repo.Update(tech); err != nil {
		return fmt.Errorf("failed to revoke technician auth token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + technicianID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.Error(err))
	}
	return nil
}
