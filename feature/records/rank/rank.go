package rank

import (
	"shaktool/feature/records/models"
	"shaktool/feature/records/store"

	"go.uber.org/zap"
)

// TopLimit is the number of records returned by Top.
const TopLimit = 10

// RankUnknown is returned by Rank when the underlying query fails; callers
// render it rather than aborting the whole response.
const RankUnknown = 999

// Queries answers read-only ranking questions over the canonical record set.
//
// Top, WorldRecord and PersonalBest deliberately ignore the region: the
// displayed leaderboard merges NTSC and PAL. Rank counts within a record's
// own category and region, since times across regions are not comparable
// second-for-second.
type Queries struct {
	store  *store.Store
	logger *zap.Logger
}

// New creates the query service.
func New(s *store.Store, logger *zap.Logger) *Queries {
	return &Queries{store: s, logger: logger}
}

// Top returns up to ten active, timed records for the category, fastest
// first. An empty result is reported as store.ErrNotFound.
func (q *Queries) Top(category models.Category) ([]models.Record, error) {
	records, err := q.store.TopRecords(category, TopLimit)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, store.ErrNotFound
	}
	return records, nil
}

// WorldRecord returns the single fastest active record for the category.
func (q *Queries) WorldRecord(category models.Category) (*models.Record, error) {
	records, err := q.store.TopRecords(category, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, store.ErrNotFound
	}
	return &records[0], nil
}

// PersonalBest returns the runner's active record for the category.
func (q *Queries) PersonalBest(runnerID int, category models.Category) (*models.Record, error) {
	return q.store.PersonalBest(runnerID, category)
}

// RunnerRecords returns all of the runner's active, timed records ordered
// by category.
func (q *Queries) RunnerRecords(runnerID int) ([]models.Record, error) {
	records, err := q.store.RunnerRecords(runnerID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, store.ErrNotFound
	}
	return records, nil
}

// Rank returns the record's 1-based position within its category and region:
// the count of active, timed records at or below its realtime. Ties count
// inclusively, so tied records share a rank. A failed query yields
// RankUnknown instead of an error.
func (q *Queries) Rank(record *models.Record) int {
	count, err := q.store.CountAtOrBelow(record.Category, record.Region, record.Realtime)
	if err != nil {
		q.logger.Warn("Rank query failed",
			zap.Int("record_id", record.ID),
			zap.Error(err),
		)
		return RankUnknown
	}
	return count
}
