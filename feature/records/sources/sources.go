package sources

import (
	"context"
	"errors"
	"io"

	"shaktool/feature/records/models"
)

// ErrInvalidData marks an upstream payload item that could not be parsed
// into the expected shape. The ingestion driver skips the item and moves on;
// previously committed records are unaffected.
var ErrInvalidData = errors.New("invalid payload data")

// Run is a normalized run observation, classified and time-parsed but with
// the runner not yet resolved to a canonical identity.
type Run struct {
	Source models.Source
	// DtID is the deertier record id, 0 for other sources.
	DtID int
	// SrcID is the speedrun.com run id, empty for other sources.
	SrcID string
	// RunnerName is the display name the source reported.
	RunnerName string
	// RunnerDtID / RunnerSrcID are the runner's identifiers in each source's
	// namespace, where known.
	RunnerDtID  string
	RunnerSrcID string
	Category    models.Category
	Region      models.Region
	Realtime    int
	Gametime    int
	Comment     string
	Video       string
}

// SourceUserID returns the runner identifier in the namespace of the run's
// own source, empty when the source reported none.
func (r Run) SourceUserID() string {
	if r.Source == models.SourceDeerTier {
		return r.RunnerDtID
	}
	return r.RunnerSrcID
}

// Observed converts the run into the engine's input shape once the runner
// has been resolved.
func (r Run) Observed(runner models.Runner) models.ObservedRun {
	return models.ObservedRun{
		Source:   r.Source,
		DtID:     r.DtID,
		SrcID:    r.SrcID,
		Runner:   runner,
		Category: r.Category,
		Region:   r.Region,
		Realtime: r.Realtime,
		Gametime: r.Gametime,
		Comment:  r.Comment,
		Video:    r.Video,
	}
}

// DeerTierClient fetches raw deertier payloads. Implementations live outside
// this core; the CLI reads saved payloads from disk instead.
type DeerTierClient interface {
	Records(ctx context.Context) (io.ReadCloser, error)
}

// SpeedrunClient fetches raw speedrun.com leaderboard payloads, one per
// category URL.
type SpeedrunClient interface {
	Leaderboards(ctx context.Context) ([]io.ReadCloser, error)
}
