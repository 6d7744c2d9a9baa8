package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/lawfirm-api/internal/config"
	"github.com/BruksfildServices01/lawfirm-api/internal/db"
	"github.com/BruksfildServices01/lawfirm-api/internal/db/dbtest"
)

func TestMigrationsCreateTables(t *testing.T) {
	gdb := dbtest.Open(t)

	for _, table := range []string{"bookings", "testimonials", "practice_areas", "contacts"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
	assert.True(t, gdb.Migrator().HasIndex("bookings", "idx_bookings_consultation_date"))
}

func TestMigrateIsRepeatable(t *testing.T) {
	gdb := dbtest.Open(t)
	require.NoError(t, db.Migrate(gdb))
}

func TestNewDBWithSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")
	cfg := &config.Config{DBUrl: "sqlite:///" + path}

	gdb, err := db.NewDB(cfg)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.True(t, gdb.Migrator().HasTable("bookings"))
}
