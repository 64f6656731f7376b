// Package resolve turns source-specific runner identifiers into canonical
// Runner entities.
package resolve

import (
	"errors"
	"fmt"

	"shaktool/feature/records/models"
	"shaktool/feature/records/store"

	"go.uber.org/zap"
)

// Resolver resolves runner identities across source namespaces.
type Resolver struct {
	logger *zap.Logger
}

// New creates a resolver.
func New(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve maps a source-specific runner identifier (or display name) to a
// canonical runner, creating one when no match exists.
//
// Resolution is three-tier, first success wins:
//  1. Exact match on the identifier the source uses (deertier username or
//     speedrun.com user id).
//  2. Case-insensitive match on display name; a missing identifier for this
//     source is backfilled onto the matched runner.
//  3. A new runner is created and persisted.
//
// The store handle must be transactional when called during ingestion so
// concurrent resolution of the same runner cannot create duplicates.
func (r *Resolver) Resolve(s *store.Store, source models.Source, sourceUserID, displayName string) (*models.Runner, error) {
	if sourceUserID != "" {
		runner, err := r.bySourceID(s, source, sourceUserID)
		if err == nil {
			return runner, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	if displayName == "" {
		return nil, fmt.Errorf("cannot resolve runner: no identifier and no display name")
	}

	runner, err := s.RunnerByName(displayName)
	if err == nil {
		if backfillSourceID(runner, source, sourceUserID) {
			if err := s.UpdateRunner(runner); err != nil {
				return nil, fmt.Errorf("failed to backfill runner %d: %w", runner.ID, err)
			}
			r.logger.Debug("Backfilled runner source id",
				zap.Int("runner_id", runner.ID),
				zap.String("source", source.String()),
			)
		}
		return runner, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	runner = &models.Runner{Name: displayName, Sync: 1}
	backfillSourceID(runner, source, sourceUserID)
	if err := s.CreateRunner(runner); err != nil {
		return nil, fmt.Errorf("failed to create runner %q: %w", displayName, err)
	}
	r.logger.Info("Created runner",
		zap.Int("runner_id", runner.ID),
		zap.String("name", runner.Name),
		zap.String("source", source.String()),
	)
	return runner, nil
}

func (r *Resolver) bySourceID(s *store.Store, source models.Source, sourceUserID string) (*models.Runner, error) {
	if source == models.SourceDeerTier {
		return s.RunnerByDtID(sourceUserID)
	}
	return s.RunnerBySrcID(sourceUserID)
}

// backfillSourceID sets the runner's identifier for the source if it is
// still empty. It reports whether the runner was changed.
func backfillSourceID(runner *models.Runner, source models.Source, sourceUserID string) bool {
	if sourceUserID == "" {
		return false
	}
	switch source {
	case models.SourceDeerTier:
		if runner.DtID == "" {
			runner.DtID = sourceUserID
			return true
		}
	case models.SourceSpeedrun:
		if runner.SrcID == "" {
			runner.SrcID = sourceUserID
			return true
		}
	}
	return false
}
