package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadApp_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CURRENCY", "")
	t.Setenv("ENV", "")

	app := LoadApp()
	assert.Equal(t, "3000", app.Port)
	assert.Equal(t, "KES", app.Currency)
	assert.False(t, app.Production())
}

func TestLoadApp_Production(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, LoadApp().Production())
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "pochi_test")
	t.Setenv("DB_SSLMODE", "")

	dsn := LoadDatabase().DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=pochi_test")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestLoadRedis_InvalidDBFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	assert.Zero(t, LoadRedis().DB)
}
