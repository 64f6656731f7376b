package records

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"shaktool/feature/records/models"
	"shaktool/feature/records/rank"
	"shaktool/feature/records/reconcile"
	"shaktool/feature/records/resolve"
	"shaktool/feature/records/sources"
	"shaktool/feature/records/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUnknownCategory is returned when free-text input does not name any
// tracked category.
var ErrUnknownCategory = errors.New("unknown category")

// Service bundles the record components behind the command-layer contract:
// ingestion, submission and the ranking queries.
type Service struct {
	store    *store.Store
	resolver *resolve.Resolver
	engine   *reconcile.Engine
	queries  *rank.Queries
	logger   *zap.Logger
}

// NewService creates the record service on top of a database handle.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	s := store.New(db)
	return &Service{
		store:    s,
		resolver: resolve.New(logger),
		engine:   reconcile.New(s, logger),
		queries:  rank.New(s, logger),
		logger:   logger,
	}
}

// Migrate creates the runners and records tables if they do not exist.
func (s *Service) Migrate() error {
	return s.store.AutoMigrate()
}

// RecordView is a record prepared for display: runner and category resolved
// to names, times rendered, rank computed.
type RecordView struct {
	Rank     int    `json:"rank"`
	Runner   string `json:"runner"`
	Category string `json:"category"`
	Region   string `json:"region"`
	Realtime string `json:"realtime"`
	Gametime string `json:"gametime"`
	Comment  string `json:"comment,omitempty"`
	Video    string `json:"video,omitempty"`
}

// IngestSummary reports the outcome of one ingestion pass.
type IngestSummary struct {
	// Source names the ingested source.
	Source string `json:"source"`
	// Runs is the number of observations reconciled.
	Runs int `json:"runs"`
	// Skipped is the number of payload items that failed to normalize.
	Skipped int `json:"skipped"`
}

// Top returns up to ten records for the free-text category name, fastest
// first.
func (s *Service) Top(categoryName string) ([]RecordView, error) {
	category, err := s.category(categoryName)
	if err != nil {
		return nil, err
	}
	records, err := s.queries.Top(category)
	if err != nil {
		return nil, err
	}
	views := make([]RecordView, 0, len(records))
	for i, record := range records {
		view, err := s.view(record)
		if err != nil {
			return nil, err
		}
		// The top list is already ordered; positions are list positions,
		// not per-region ranks.
		view.Rank = i + 1
		views = append(views, view)
	}
	return views, nil
}

// WorldRecord returns the fastest record for the free-text category name.
func (s *Service) WorldRecord(categoryName string) (*RecordView, error) {
	category, err := s.category(categoryName)
	if err != nil {
		return nil, err
	}
	record, err := s.queries.WorldRecord(category)
	if err != nil {
		return nil, err
	}
	view, err := s.view(*record)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// PersonalBest returns the named runner's active record for the free-text
// category name.
func (s *Service) PersonalBest(runnerName, categoryName string) (*RecordView, error) {
	category, err := s.category(categoryName)
	if err != nil {
		return nil, err
	}
	runner, err := s.store.RunnerByName(runnerName)
	if err != nil {
		return nil, err
	}
	record, err := s.queries.PersonalBest(runner.ID, category)
	if err != nil {
		return nil, err
	}
	view, err := s.view(*record)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RunnerRecords returns all active records of the named runner, each with
// its rank, ordered by category.
func (s *Service) RunnerRecords(runnerName string) ([]RecordView, error) {
	runner, err := s.store.RunnerByName(runnerName)
	if err != nil {
		return nil, err
	}
	records, err := s.queries.RunnerRecords(runner.ID)
	if err != nil {
		return nil, err
	}
	views := make([]RecordView, 0, len(records))
	for _, record := range records {
		view, err := s.view(record)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// IngestDeerTier reconciles a full deertier records payload.
func (s *Service) IngestDeerTier(r io.Reader) (*IngestSummary, error) {
	records, err := sources.DecodeDeerTier(r)
	if err != nil {
		return nil, err
	}

	summary := &IngestSummary{Source: models.SourceDeerTier.String()}
	for _, record := range records {
		run, err := record.Normalize()
		if err != nil {
			summary.Skipped++
			s.logger.Warn("Skipping deertier record", zap.Int("dt_id", record.ID), zap.Error(err))
			continue
		}
		if err := s.ingest(run); err != nil {
			return summary, err
		}
		summary.Runs++
	}
	return summary, nil
}

// IngestSpeedrun reconciles one speedrun.com leaderboard payload.
func (s *Service) IngestSpeedrun(r io.Reader) (*IngestSummary, error) {
	leaderboard, err := sources.DecodeSpeedrun(r)
	if err != nil {
		return nil, err
	}

	runs := leaderboard.Normalize()
	summary := &IngestSummary{
		Source:  models.SourceSpeedrun.String(),
		Skipped: len(leaderboard.Runs) - len(runs),
	}
	for _, run := range runs {
		if err := s.ingest(run); err != nil {
			return summary, err
		}
		summary.Runs++
	}
	return summary, nil
}

// SubmitRequest is a manually submitted run.
type SubmitRequest struct {
	Runner   string `json:"runner"`
	Category string `json:"category"`
	Region   string `json:"region"`
	Realtime string `json:"realtime"`
	Gametime string `json:"gametime"`
	Comment  string `json:"comment"`
	Video    string `json:"video"`
}

// Submit reconciles a manually submitted run into the record set.
func (s *Service) Submit(req SubmitRequest) (*RecordView, error) {
	if req.Runner == "" {
		return nil, fmt.Errorf("%w: runner is required", sources.ErrInvalidData)
	}
	category, err := s.category(req.Category)
	if err != nil {
		return nil, err
	}
	realtime, err := models.ParseClockTime(req.Realtime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sources.ErrInvalidData, err)
	}
	gametime, err := models.ParseClockTime(req.Gametime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sources.ErrInvalidData, err)
	}

	region := models.NTSC
	if strings.EqualFold(strings.TrimSpace(req.Region), "pal") {
		region = models.PAL
	}

	run := sources.Run{
		RunnerName: req.Runner,
		Category:   category,
		Region:     region,
		Realtime:   realtime,
		Gametime:   gametime,
		Comment:    req.Comment,
		Video:      req.Video,
	}
	if err := s.ingest(run); err != nil {
		return nil, err
	}

	// The submitted run may not be the personal best; look it up directly.
	runner, err := s.store.RunnerByName(req.Runner)
	if err != nil {
		return nil, err
	}
	stored, err := s.store.RecordByRunnerTime(runner.ID, category, region, realtime)
	if err != nil {
		return nil, err
	}
	view, err := s.view(*stored)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ingest resolves the run's identity and reconciles it. Resolution and
// reconciliation each run in their own transaction.
func (s *Service) ingest(run sources.Run) error {
	var runner *models.Runner
	err := s.store.Transaction(func(tx *store.Store) error {
		var err error
		runner, err = s.resolver.Resolve(tx, run.Source, run.SourceUserID(), run.RunnerName)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to resolve runner %q: %w", run.RunnerName, err)
	}

	if _, err := s.engine.Reconcile(run.Observed(*runner)); err != nil {
		return fmt.Errorf("failed to reconcile run for %q: %w", run.RunnerName, err)
	}
	return nil
}

// category parses free-text category input, rejecting unknown names.
func (s *Service) category(name string) (models.Category, error) {
	category := models.ParseCategory(name)
	if category == models.CategoryUnknown {
		return category, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return category, nil
}

// view joins a record with its runner and computes its rank.
func (s *Service) view(record models.Record) (RecordView, error) {
	runner, err := s.store.RunnerByID(record.RunnerID)
	if err != nil {
		return RecordView{}, fmt.Errorf("failed to load runner %d: %w", record.RunnerID, err)
	}
	return RecordView{
		Rank:     s.queries.Rank(&record),
		Runner:   runner.Name,
		Category: record.Category.String(),
		Region:   record.Region.String(),
		Realtime: record.RealtimeString(),
		Gametime: record.GametimeString(),
		Comment:  record.Comment,
		Video:    record.Video,
	}, nil
}
