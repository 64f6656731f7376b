package reconcile

import (
	"errors"
	"fmt"

	"shaktool/feature/records/models"
	"shaktool/feature/records/store"

	"go.uber.org/zap"
)

// Engine reconciles observed runs against the canonical record set.
type Engine struct {
	store  *store.Store
	logger *zap.Logger
}

// New creates a reconciliation engine on top of the given store.
func New(s *store.Store, logger *zap.Logger) *Engine {
	return &Engine{store: s, logger: logger}
}

// Reconcile upserts one observed run into the canonical record set and
// returns the canonical record representing it. The whole check-and-act
// sequence runs in a single transaction, so concurrent ingestion of the same
// run cannot duplicate records or active flags.
//
// Reconcile is idempotent: a second observation with the same source run id
// returns the already-stored record unchanged.
func (e *Engine) Reconcile(run models.ObservedRun) (*models.Record, error) {
	var result *models.Record
	err := e.store.Transaction(func(tx *store.Store) error {
		match, err := findExisting(tx, run)
		if err != nil {
			return err
		}

		switch match.tier {
		case matchNone:
			result, err = e.create(tx, run)
		case matchSourceID:
			// Already reconciled; nothing to merge.
			result = match.record
		case matchRunnerTime:
			result, err = e.mergeSources(tx, match.record, run)
		case matchVideo, matchComment:
			result, err = e.mergeRunners(tx, match.record, run)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// matchTier identifies which fallback tier matched an observed run to a
// stored record.
type matchTier int

const (
	matchNone matchTier = iota
	matchSourceID
	matchRunnerTime
	matchVideo
	matchComment
)

type match struct {
	tier   matchTier
	record *models.Record
}

// findExisting locates the stored record an observation corresponds to, if
// any. Each tier is tried only when the previous found nothing; a NotFound
// at any tier just advances to the next.
func findExisting(tx *store.Store, run models.ObservedRun) (match, error) {
	// Tier 1: this source already reported this exact run.
	record, err := recordBySourceID(tx, run)
	if err == nil {
		return match{tier: matchSourceID, record: record}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return match{}, err
	}

	// Tier 2: same runner, category, region and identical realtime means
	// the same run observed from the other source.
	record, err = tx.RecordByRunnerTime(run.Runner.ID, run.Category, run.Region, run.Realtime)
	if err == nil {
		return match{tier: matchRunnerTime, record: record}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return match{}, err
	}

	// Tier 3: identical video URL for the same category/region/time is the
	// same run even when attributed to a differently named runner.
	if run.Video != "" {
		record, err = tx.RecordByVideo(run.Video, run.Category, run.Region, run.Realtime)
		if err == nil {
			return match{tier: matchVideo, record: record}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return match{}, err
		}
	}

	// Tier 4: same fallback on the free-text comment.
	if run.Comment != "" {
		record, err = tx.RecordByComment(run.Comment, run.Category, run.Region, run.Realtime)
		if err == nil {
			return match{tier: matchComment, record: record}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return match{}, err
		}
	}

	return match{tier: matchNone}, nil
}

func recordBySourceID(tx *store.Store, run models.ObservedRun) (*models.Record, error) {
	switch {
	case run.Source == models.SourceDeerTier && run.DtID != 0:
		return tx.RecordByDtID(run.DtID)
	case run.Source == models.SourceSpeedrun && run.SrcID != "":
		return tx.RecordBySrcID(run.SrcID)
	default:
		return nil, store.ErrNotFound
	}
}

// mergeSources merges a second-source observation into an existing record of
// the same runner: the new source's run id and any metadata the record lacks
// are filled in, while the active state is kept as-is.
func (e *Engine) mergeSources(tx *store.Store, record *models.Record, run models.ObservedRun) (*models.Record, error) {
	changed := mergeObservation(record, run)
	if !changed {
		return record, nil
	}
	if err := tx.UpdateRecord(record); err != nil {
		return nil, fmt.Errorf("failed to merge record %d: %w", record.ID, err)
	}
	e.logger.Debug("Merged run observation into record",
		zap.Int("record_id", record.ID),
		zap.String("source", run.Source.String()),
	)
	return record, nil
}

// mergeRunners handles a video or comment match: the stored record belongs
// to the same person even though it is attributed to a different runner row
// (typically created under another display name). Missing cross-source
// identifiers move from the observation's runner onto the record's runner,
// and the observation merges as usual.
func (e *Engine) mergeRunners(tx *store.Store, record *models.Record, run models.ObservedRun) (*models.Record, error) {
	owner, err := tx.RunnerByID(record.RunnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load runner %d for record %d: %w", record.RunnerID, record.ID, err)
	}

	ownerChanged := false
	if owner.DtID == "" && run.Runner.DtID != "" {
		owner.DtID = run.Runner.DtID
		ownerChanged = true
	}
	if owner.SrcID == "" && run.Runner.SrcID != "" {
		owner.SrcID = run.Runner.SrcID
		ownerChanged = true
	}
	if ownerChanged {
		if err := tx.UpdateRunner(owner); err != nil {
			return nil, fmt.Errorf("failed to backfill runner %d: %w", owner.ID, err)
		}
		e.logger.Info("Backfilled runner identifiers from duplicate identity",
			zap.Int("runner_id", owner.ID),
			zap.Int("duplicate_runner_id", run.Runner.ID),
		)
	}

	// The record stays attributed to its original runner row; only the
	// observation's ids and metadata merge in.
	changed := mergeObservation(record, run)
	if !changed {
		return record, nil
	}
	if err := tx.UpdateRecord(record); err != nil {
		return nil, fmt.Errorf("failed to merge record %d: %w", record.ID, err)
	}
	return record, nil
}

// mergeObservation fills source ids and metadata the stored record lacks.
// It reports whether the record was changed.
func mergeObservation(record *models.Record, run models.ObservedRun) bool {
	changed := false
	if record.DtID == 0 && run.DtID != 0 {
		record.DtID = run.DtID
		changed = true
	}
	if record.SrcID == "" && run.SrcID != "" {
		record.SrcID = run.SrcID
		changed = true
	}
	if record.Comment == "" && run.Comment != "" {
		record.Comment = run.Comment
		changed = true
	}
	if record.Video == "" && run.Video != "" {
		record.Video = run.Video
		changed = true
	}
	return changed
}

// create inserts a brand new canonical record, maintaining the per
// runner/category/region "lowest realtime wins" active invariant. Records
// with no recorded time are never active.
func (e *Engine) create(tx *store.Store, run models.ObservedRun) (*models.Record, error) {
	record := &models.Record{
		DtID:     run.DtID,
		SrcID:    run.SrcID,
		RunnerID: run.Runner.ID,
		Category: run.Category,
		Region:   run.Region,
		Realtime: run.Realtime,
		Gametime: run.Gametime,
		Comment:  run.Comment,
		Video:    run.Video,
		Active:   1,
	}

	if run.Realtime == 0 {
		record.Active = 0
	} else {
		faster, err := tx.HasFasterRun(run.Runner.ID, run.Category, run.Region, run.Realtime)
		if err != nil {
			return nil, err
		}
		if faster {
			record.Active = 0
		}
	}

	if record.Active == 1 {
		if err := tx.DeactivateSlowerRuns(run.Runner.ID, run.Category, run.Region, run.Realtime); err != nil {
			return nil, err
		}
	}

	if err := tx.CreateRecord(record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	e.logger.Debug("Created record",
		zap.Int("record_id", record.ID),
		zap.Int("runner_id", record.RunnerID),
		zap.String("category", record.Category.String()),
		zap.Int("realtime", record.Realtime),
		zap.Int("active", record.Active),
	)
	return record, nil
}
