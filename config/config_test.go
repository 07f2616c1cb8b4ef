package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-api/models"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("MAX_IMAGE_PIXELS", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Equal(t, "/media/", cfg.MediaURL)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Contains(t, cfg.DatabaseURL, "dbname=influencer")
	assert.Equal(t, 89478485, cfg.MaxImagePixels)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadTrustedProxies(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 192.168.0.0/16,")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "not-an-ip")
	_, err = Load()
	assert.ErrorContains(t, err, "TRUSTED_PROXIES")
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "forever")
	_, err := Load()
	assert.ErrorContains(t, err, "JWT_EXPIRATION")

	t.Setenv("JWT_EXPIRATION", "1h")
	t.Setenv("STORAGE_BACKEND", "gcs")
	t.Setenv("GCS_BUCKET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "GCS_BUCKET")

	t.Setenv("STORAGE_BACKEND", "local")
	t.Setenv("DB_DRIVER", "mongo")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestInitDBSQLite(t *testing.T) {
	db, err := InitDB(Config{
		Env:        "test",
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	defer CloseDB(db)

	for _, table := range []string{"users", "tags", "styles", "influencers", "influencer_tags", "influencer_styles"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	user := models.User{Email: "a@b.com", Password: models.UnusablePassword}
	require.NoError(t, db.Create(&user).Error)
	assert.Error(t, db.Create(&models.User{Email: "a@b.com", Password: "x"}).Error, "email must be unique")
}
