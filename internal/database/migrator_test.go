package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		assert.True(t, strings.HasSuffix(entry.Name(), ".sql"), entry.Name())

		body, err := migrationsFS.ReadFile(migrationsDir + "/" + entry.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", entry.Name())
		assert.Contains(t, string(body), "-- +goose Down", entry.Name())
	}
}

func TestNotifyTriggerCoversBothTables(t *testing.T) {
	body, err := migrationsFS.ReadFile(migrationsDir + "/00003_notify_changes.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "TG_TABLE_NAME || '_changes'")
	assert.Contains(t, sql, "ON servicos")
	assert.Contains(t, sql, "ON pagamentos_ajudantes")
}

func TestNewMigrator_InvalidDB(t *testing.T) {
	_, err := NewMigrator("postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", zap.NewNop())
	assert.Error(t, err)
}
