package rank_test

import (
	"testing"

	"shaktool/core/database"
	"shaktool/feature/records/models"
	"shaktool/feature/records/rank"
	"shaktool/feature/records/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newQueries(t *testing.T) (*rank.Queries, *store.Store) {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)

	s := store.New(db)
	assert.NoError(t, s.AutoMigrate())
	return rank.New(s, zap.NewNop()), s
}

func seedRecord(t *testing.T, s *store.Store, name string, category models.Category, region models.Region, realtime int) models.Record {
	t.Helper()

	runner := &models.Runner{Name: name}
	assert.NoError(t, s.CreateRunner(runner))
	record := &models.Record{
		RunnerID: runner.ID,
		Category: category,
		Region:   region,
		Realtime: realtime,
		Active:   1,
	}
	assert.NoError(t, s.CreateRecord(record))
	return *record
}

func TestTop(t *testing.T) {
	q, s := newQueries(t)

	seedRecord(t, s, "slow", models.AnyPercent, models.NTSC, 3600)
	seedRecord(t, s, "fast", models.AnyPercent, models.NTSC, 2483)
	seedRecord(t, s, "mid", models.AnyPercent, models.PAL, 3000)

	// The top list merges regions.
	records, err := q.Top(models.AnyPercent)
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 2483, records[0].Realtime)
	assert.Equal(t, 3600, records[2].Realtime)
}

func TestTopEmptyCategory(t *testing.T) {
	q, _ := newQueries(t)

	_, err := q.Top(models.RBO)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWorldRecord(t *testing.T) {
	q, s := newQueries(t)

	seedRecord(t, s, "second", models.OneHundredPercent, models.NTSC, 5000)
	wr := seedRecord(t, s, "first", models.OneHundredPercent, models.NTSC, 4700)

	record, err := q.WorldRecord(models.OneHundredPercent)
	assert.NoError(t, err)
	assert.Equal(t, wr.ID, record.ID)

	// The world record is rank one within its region.
	assert.Equal(t, 1, q.Rank(record))

	_, err = q.WorldRecord(models.CeresEscape)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRankIsPerRegion(t *testing.T) {
	q, s := newQueries(t)

	seedRecord(t, s, "ntsc1", models.AnyPercent, models.NTSC, 2500)
	seedRecord(t, s, "ntsc2", models.AnyPercent, models.NTSC, 2600)
	pal := seedRecord(t, s, "pal1", models.AnyPercent, models.PAL, 2700)

	// Despite being slowest overall, the PAL run leads its own board.
	assert.Equal(t, 1, q.Rank(&pal))
}

func TestRankTiesShareAPosition(t *testing.T) {
	q, s := newQueries(t)

	a := seedRecord(t, s, "tied_a", models.CeresEscape, models.NTSC, 47)
	b := seedRecord(t, s, "tied_b", models.CeresEscape, models.NTSC, 47)

	assert.Equal(t, 2, q.Rank(&a))
	assert.Equal(t, 2, q.Rank(&b))
}

func TestPersonalBestAndRunnerRecords(t *testing.T) {
	q, s := newQueries(t)

	record := seedRecord(t, s, "Oatsngoats", models.AnyPercent, models.NTSC, 2530)

	pb, err := q.PersonalBest(record.RunnerID, models.AnyPercent)
	assert.NoError(t, err)
	assert.Equal(t, record.ID, pb.ID)

	_, err = q.PersonalBest(record.RunnerID, models.RBO)
	assert.ErrorIs(t, err, store.ErrNotFound)

	records, err := q.RunnerRecords(record.RunnerID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = q.RunnerRecords(99999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
