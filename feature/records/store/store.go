package store

import (
	"errors"
	"fmt"

	"shaktool/feature/records/models"

	"gorm.io/gorm"
)

// Store is the typed repository over the runners and records tables.
// All reconciliation check-and-act sequences must run through Transaction so
// concurrent ingestion cannot create duplicate runners or active flags.
type Store struct {
	db *gorm.DB
}

// New creates a store bound to the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates the runners and records tables if they do not exist.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&models.Runner{}, &models.Record{})
}

// Transaction runs fn inside a database transaction, passing it a store
// bound to the transactional handle.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func wrapLookup(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// RunnerByID looks up a runner by internal id.
func (s *Store) RunnerByID(id int) (*models.Runner, error) {
	var runner models.Runner
	if err := s.db.First(&runner, "id = ?", id).Error; err != nil {
		return nil, wrapLookup(err)
	}
	return &runner, nil
}

// RunnerByDtID looks up a runner by deertier username.
func (s *Store) RunnerByDtID(dtID string) (*models.Runner, error) {
	var runner models.Runner
	if err := s.db.First(&runner, "dt_id = ?", dtID).Error; err != nil {
		return nil, wrapLookup(err)
	}
	return &runner, nil
}

// RunnerBySrcID looks up a runner by speedrun.com user id.
func (s *Store) RunnerBySrcID(srcID string) (*models.Runner, error) {
	var runner models.Runner
	if err := s.db.First(&runner, "src_id = ?", srcID).Error; err != nil {
		return nil, wrapLookup(err)
	}
	return &runner, nil
}

// RunnerByName looks up a runner by display name, case-insensitively.
func (s *Store) RunnerByName(name string) (*models.Runner, error) {
	var runner models.Runner
	if err := s.db.First(&runner, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, wrapLookup(err)
	}
	return &runner, nil
}

// CreateRunner inserts a new runner and fills in its assigned id.
func (s *Store) CreateRunner(runner *models.Runner) error {
	if runner.ID != 0 {
		return fmt.Errorf("runner already persisted with id %d", runner.ID)
	}
	return s.db.Create(runner).Error
}

// UpdateRunner persists changes to an existing runner.
func (s *Store) UpdateRunner(runner *models.Runner) error {
	if runner.ID == 0 {
		return fmt.Errorf("cannot update unpersisted runner")
	}
	return s.db.Save(runner).Error
}

// RecordByID looks up a record by internal id.
func (s *Store) RecordByID(id int) (*models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, wrapLookup(err)
	}
	return &record, nil
}

// RecordByDtID looks up a record by deertier record id.
func (s *Store) RecordByDtID(dtID int) (*models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, "dt_id = ?", dtID).Error; err != nil {
		return nil, wrapLookup(err)
	}
	return &record, nil
}

// RecordBySrcID looks up a record by speedrun.com run id.
func (s *Store) RecordBySrcID(srcID string) (*models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, "src_id = ?", srcID).Error; err != nil {
		return nil, wrapLookup(err)
	}
	return &record, nil
}

// RecordByRunnerTime finds a record for the same runner, category, region
// and identical realtime. Such a record is the same run observed from a
// second source.
func (s *Store) RecordByRunnerTime(runnerID int, category models.Category, region models.Region, realtime int) (*models.Record, error) {
	var record models.Record
	err := s.db.First(&record,
		"runner_id = ? AND category = ? AND region = ? AND realtime = ?",
		runnerID, category.Code(), region.Code(), realtime).Error
	if err != nil {
		return nil, wrapLookup(err)
	}
	return &record, nil
}

// RecordByVideo finds a record with the same video URL, category, region and
// realtime, regardless of which runner it is attributed to.
func (s *Store) RecordByVideo(video string, category models.Category, region models.Region, realtime int) (*models.Record, error) {
	var record models.Record
	err := s.db.First(&record,
		"video = ? AND category = ? AND region = ? AND realtime = ?",
		video, category.Code(), region.Code(), realtime).Error
	if err != nil {
		return nil, wrapLookup(err)
	}
	return &record, nil
}

// RecordByComment finds a record with the same comment, category, region and
// realtime, regardless of which runner it is attributed to.
func (s *Store) RecordByComment(comment string, category models.Category, region models.Region, realtime int) (*models.Record, error) {
	var record models.Record
	err := s.db.First(&record,
		"comment = ? AND category = ? AND region = ? AND realtime = ?",
		comment, category.Code(), region.Code(), realtime).Error
	if err != nil {
		return nil, wrapLookup(err)
	}
	return &record, nil
}

// CreateRecord inserts a new record and fills in its assigned id.
func (s *Store) CreateRecord(record *models.Record) error {
	if record.ID != 0 {
		return fmt.Errorf("record already persisted with id %d", record.ID)
	}
	return s.db.Create(record).Error
}

// UpdateRecord persists changes to an existing record.
func (s *Store) UpdateRecord(record *models.Record) error {
	if record.ID == 0 {
		return fmt.Errorf("cannot update unpersisted record")
	}
	return s.db.Save(record).Error
}

// HasFasterRun reports whether the runner already has an active record for
// the category and region with a strictly lower nonzero realtime.
func (s *Store) HasFasterRun(runnerID int, category models.Category, region models.Region, realtime int) (bool, error) {
	var count int64
	err := s.db.Model(&models.Record{}).
		Where("runner_id = ? AND category = ? AND region = ? AND active = 1 AND realtime != 0 AND realtime < ?",
			runnerID, category.Code(), region.Code(), realtime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeactivateSlowerRuns clears the active flag on every record of the runner
// for the category and region with a strictly higher realtime.
func (s *Store) DeactivateSlowerRuns(runnerID int, category models.Category, region models.Region, realtime int) error {
	return s.db.Model(&models.Record{}).
		Where("runner_id = ? AND category = ? AND region = ? AND realtime > ?",
			runnerID, category.Code(), region.Code(), realtime).
		Update("active", 0).Error
}

// TopRecords returns up to limit active, timed records for the category,
// fastest first, across all regions.
func (s *Store) TopRecords(category models.Category, limit int) ([]models.Record, error) {
	var out []models.Record
	err := s.db.
		Where("category = ? AND active = 1 AND realtime != 0", category.Code()).
		Order("realtime ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PersonalBest returns the runner's active record for the category,
// region-agnostic.
func (s *Store) PersonalBest(runnerID int, category models.Category) (*models.Record, error) {
	var record models.Record
	err := s.db.First(&record,
		"runner_id = ? AND category = ? AND active = 1",
		runnerID, category.Code()).Error
	if err != nil {
		return nil, wrapLookup(err)
	}
	return &record, nil
}

// RunnerRecords returns all active, timed records for the runner,
// ordered by category.
func (s *Store) RunnerRecords(runnerID int) ([]models.Record, error) {
	var out []models.Record
	err := s.db.
		Where("runner_id = ? AND active = 1 AND realtime != 0", runnerID).
		Order("category ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountAtOrBelow counts active, timed records in the category and region
// with a realtime at or below the given one. This is the record's
// count-based rank.
func (s *Store) CountAtOrBelow(category models.Category, region models.Region, realtime int) (int, error) {
	var count int64
	err := s.db.Model(&models.Record{}).
		Where("category = ? AND region = ? AND active = 1 AND realtime != 0 AND realtime <= ?",
			category.Code(), region.Code(), realtime).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
