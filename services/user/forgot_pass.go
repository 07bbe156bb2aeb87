// File: services/user/forgot_pass.go
package user

import (
	"fmt"
	"time"

	"zeefreeze/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// InitiatePasswordReset issues a one-time reset code for the account holding
// this email. An unknown email returns success so the endpoint cannot be used
// to probe which addresses have accounts.
func (s *DefaultUserService) InitiatePasswordReset(email string) error {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		utils.GetLogger().Info("Password reset requested for unknown email")
		return nil
	}

	otp, err := utils.InitiateResetOTP(usr.ID)
	if err != nil {
		return fmt.Errorf("failed to initiate password reset: %w", err)
	}

	// Delivery happens out of band (email/SMS provider). Until that wiring
	// lands, the code is only logged in development.
	utils.GetLogger().Debug("Password reset OTP issued",
		zap.String("userID", usr.ID), zap.String("otp", otp))
	return nil
}

// CompletePasswordReset verifies the one-time code and installs the new
// password. All existing tokens are revoked.
func (s *DefaultUserService) CompletePasswordReset(email, otp, newPassword string) error {
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return fmt.Errorf("invalid reset request")
	}

	if err := utils.VerifyResetOTP(usr.ID, otp); err != nil {
		return fmt.Errorf("reset code verification failed: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	updateDoc := bson.M{
		"security.passwordHash": string(hashedPassword),
		"security.tokenHash":    "",
		"updatedAt":             time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(usr.ID, updateDoc); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
