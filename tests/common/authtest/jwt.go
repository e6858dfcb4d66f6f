//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/pkg/jwt"
	"vehicle-rental/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actor shared.Actor) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(actor.UserID, actor.Role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actor shared.Actor) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(actor.UserID, actor.Role)
	require.NoError(t, err)
	return token
}
