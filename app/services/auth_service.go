package services

import (
	"context"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/auth"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/logger"
)

// RoleAdmin is the only role the shop issues.
const RoleAdmin = "admin"

// AuthService verifies the externally supplied admin credential and
// issues session tokens. There is no credential in source or database:
// ADMIN_USERNAME and the bcrypt ADMIN_PASSWORD_HASH come from config.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login checks the admin credential and returns a signed JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	wantUser := config.AdminUsername()
	wantHash := config.AdminPasswordHash()

	if wantUser == "" || wantHash == "" {
		logger.WithCtx(ctx).Error("admin login attempted with no credential configured")
		return "", ErrAdminNotConfigured
	}

	if username != wantUser || !auth.CheckPassword(wantHash, password) {
		logger.WithCtx(ctx).Warn("admin login failed", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(username, RoleAdmin)
	if err != nil {
		return "", err
	}

	logger.WithCtx(ctx).Info("admin login", "username", username)
	return token, nil
}
