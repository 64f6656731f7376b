package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE runners (id INTEGER PRIMARY KEY, name TEXT, dt_id TEXT, src_id TEXT, sync INTEGER)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "runners")
	assert.NoError(t, err)
	assert.Len(t, columns, 5)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "text", colMap["dt_id"])

	// PRAGMA table_info returns an empty result for a non-existent table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestVerifyColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE records (id INTEGER PRIMARY KEY, runner_id INTEGER, realtime INTEGER)").Error
	assert.NoError(t, err)

	missing, err := VerifyColumns(db, "records", []string{"id", "runner_id", "realtime"})
	assert.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = VerifyColumns(db, "records", []string{"id", "category", "region"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"category", "region"}, missing)
}
