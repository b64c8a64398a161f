package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/logging"
	"github.com/dmitrijs2005/geoattend/internal/server/auth"
	"github.com/dmitrijs2005/geoattend/internal/server/config"
)

// AuthService authenticates the single configured administrator and
// validates the tokens it issues.
type AuthService struct {
	adminUser                   string
	adminPasswordHash           string
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

func NewAuthService(cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		adminUser:                   cfg.AdminUser,
		adminPasswordHash:           cfg.AdminPasswordHash,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		logger:                      logger.With("module", "auth"),
	}
}

// Login returns an admin access token for valid credentials.
func (s *AuthService) Login(ctx context.Context, user, password string) (string, error) {
	if err := auth.CheckCredentials(s.adminUser, s.adminPasswordHash, user, password); err != nil {
		s.logger.Warn(ctx, "admin login failed", "user", user)
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user, true, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authorize returns the admin subject of a valid token.
func (s *AuthService) Authorize(token string) (string, error) {
	if token == "" {
		return "", common.ErrorUnauthorized
	}
	return auth.GetAdminFromToken(token, s.jwtSecret)
}
