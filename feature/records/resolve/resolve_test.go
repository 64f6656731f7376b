package resolve_test

import (
	"testing"

	"shaktool/core/database"
	"shaktool/feature/records/models"
	"shaktool/feature/records/resolve"
	"shaktool/feature/records/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)

	s := store.New(db)
	assert.NoError(t, s.AutoMigrate())
	return s
}

func TestResolveBySourceID(t *testing.T) {
	s := newStore(t)
	r := resolve.New(zap.NewNop())

	existing := &models.Runner{Name: "Behemoth87", DtID: "Behemoth87"}
	assert.NoError(t, s.CreateRunner(existing))

	runner, err := r.Resolve(s, models.SourceDeerTier, "Behemoth87", "Some Other Display Name")
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, runner.ID)
	// The stored display name wins over whatever the source reported.
	assert.Equal(t, "Behemoth87", runner.Name)
}

func TestResolveByNameBackfillsSourceID(t *testing.T) {
	s := newStore(t)
	r := resolve.New(zap.NewNop())

	existing := &models.Runner{Name: "zoast", DtID: "zoast"}
	assert.NoError(t, s.CreateRunner(existing))

	runner, err := r.Resolve(s, models.SourceSpeedrun, "y8d4yl86", "Zoast")
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, runner.ID)
	assert.Equal(t, "y8d4yl86", runner.SrcID)

	// The backfill is persisted, so the next observation hits tier one.
	stored, err := s.RunnerBySrcID("y8d4yl86")
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, stored.ID)
	assert.Equal(t, "zoast", stored.DtID)
}

func TestResolveBackfillNeverOverwrites(t *testing.T) {
	s := newStore(t)
	r := resolve.New(zap.NewNop())

	existing := &models.Runner{Name: "ShinyZeni", SrcID: "original"}
	assert.NoError(t, s.CreateRunner(existing))

	runner, err := r.Resolve(s, models.SourceSpeedrun, "", "shinyzeni")
	assert.NoError(t, err)
	assert.Equal(t, "original", runner.SrcID)
}

func TestResolveCreatesRunner(t *testing.T) {
	s := newStore(t)
	r := resolve.New(zap.NewNop())

	runner, err := r.Resolve(s, models.SourceDeerTier, "newcomer", "newcomer")
	assert.NoError(t, err)
	assert.NotZero(t, runner.ID)
	assert.Equal(t, "newcomer", runner.Name)
	assert.Equal(t, "newcomer", runner.DtID)
	assert.Equal(t, 1, runner.Sync)

	// Resolving again finds the same row instead of creating a duplicate.
	again, err := r.Resolve(s, models.SourceDeerTier, "newcomer", "newcomer")
	assert.NoError(t, err)
	assert.Equal(t, runner.ID, again.ID)
}

func TestResolveRequiresSomeIdentity(t *testing.T) {
	s := newStore(t)
	r := resolve.New(zap.NewNop())

	_, err := r.Resolve(s, models.SourceSpeedrun, "", "")
	assert.Error(t, err)
}
