package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with secrets set", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
		t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
		assert.Equal(t, 168*time.Hour, cfg.RefreshTokenTTL)
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.Empty(t, cfg.RedisURL)
	})

	t.Run("missing access secret", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "")
		t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing refresh secret", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
		t.Setenv("REFRESH_TOKEN_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("identical secrets are rejected", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "same-secret")
		t.Setenv("REFRESH_TOKEN_SECRET", "same-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must differ")
	})

	t.Run("out-of-range bcrypt cost is rejected", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
		t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
		t.Setenv("BCRYPT_COST", "40")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BCRYPT_COST")
	})

	t.Run("numeric overrides", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
		t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
		t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "5")
		t.Setenv("BCRYPT_COST", "12")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
		assert.Equal(t, 12, cfg.BcryptCost)
	})
}
