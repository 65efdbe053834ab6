package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fulfillment/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("FULFILLMENT_DB__HOST", "db.local")
	t.Setenv("FULFILLMENT_DB__NAME", "fulfillment")
	t.Setenv("FULFILLMENT_JWT__SECRET", "s3cret")
}

func Test_LoadAppliesDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := cmd.Load("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "Asia/Kolkata", cfg.DisplayTimezone)
	assert.Equal(t, "pgx", cfg.DB.Driver)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 720*time.Hour, cfg.Jobs.NotificationRetention)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 5*time.Second, cfg.Kafka.PublishTimeout)
	assert.False(t, cfg.IsProduction())
}

func Test_LoadReadsNestedEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("FULFILLMENT_HTTP_PORT", "9090")
	t.Setenv("FULFILLMENT_APP_ENV", "production")
	t.Setenv("FULFILLMENT_DB__DRIVER", "postgres")
	t.Setenv("FULFILLMENT_REDIS__ADDR", "redis:6379")
	t.Setenv("FULFILLMENT_REDIS__IDEMPOTENCY_TTL", "30m")
	t.Setenv("FULFILLMENT_KAFKA__BROKERS", "k1:9092,k2:9092")
	t.Setenv("FULFILLMENT_KAFKA__PUBLISH_TIMEOUT", "2s")
	t.Setenv("FULFILLMENT_JOBS__NOTIFICATION_RETENTION", "48h")

	cfg, err := cmd.Load("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, "k1:9092,k2:9092", cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Kafka.PublishTimeout)
	assert.Equal(t, 48*time.Hour, cfg.Jobs.NotificationRetention)
}

func Test_LoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_port: "7000"
display_timezone: UTC
db:
  host: file-host
  name: file-db
jwt:
  secret: from-file
log:
  level: debug
`), 0o600))
	t.Setenv("FULFILLMENT_DB__HOST", "env-host")

	cfg, err := cmd.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, "env-host", cfg.DB.Host)
	assert.Equal(t, "file-db", cfg.DB.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.UTC, cfg.DisplayLocation())
}

func Test_LoadFailsWithoutRequiredKeys(t *testing.T) {
	_, err := cmd.Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.host required")
	assert.Contains(t, err.Error(), "jwt.secret required")
}

func Test_ValidateRejectsUnknownZone(t *testing.T) {
	setRequired(t)
	t.Setenv("FULFILLMENT_DISPLAY_TIMEZONE", "Mars/Olympus")

	_, err := cmd.Load("")

	assert.ErrorContains(t, err, "display_timezone")
}
