package models

// Source identifies which external system an observation came from.
type Source int

const (
	// SourceDeerTier is the deertier.com community leaderboard.
	SourceDeerTier Source = iota
	// SourceSpeedrun is the speedrun.com run tracker.
	SourceSpeedrun
)

func (s Source) String() string {
	if s == SourceSpeedrun {
		return "speedrun.com"
	}
	return "deertier"
}

// Runner is the canonical identity of a person who has produced runs.
// The same person appears under independent identifiers on each source;
// DtID and SrcID are backfilled as observations arrive.
type Runner struct {
	ID int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Name is the display name. Lookups on it are case-insensitive.
	Name string `gorm:"column:name" json:"name"`
	// DtID is the runner's deertier username, empty if unknown.
	DtID string `gorm:"column:dt_id" json:"dt_id"`
	// SrcID is the runner's speedrun.com user id, empty if unknown.
	SrcID string `gorm:"column:src_id" json:"src_id"`
	// Sync marks the runner for inclusion in sync passes.
	Sync int `gorm:"column:sync" json:"sync"`
}

// TableName overrides the table name used by GORM.
func (Runner) TableName() string { return "runners" }

// Record is the canonical best-effort representation of one run submission,
// post-deduplication across sources.
type Record struct {
	ID int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// DtID is the deertier record id, 0 if the run was never seen there.
	DtID int `gorm:"column:dt_id" json:"dt_id"`
	// SrcID is the speedrun.com run id, empty if the run was never seen there.
	SrcID    string   `gorm:"column:src_id" json:"src_id"`
	RunnerID int      `gorm:"column:runner_id" json:"runner_id"`
	Category Category `gorm:"column:category" json:"category"`
	Region   Region   `gorm:"column:region" json:"region"`
	// Realtime is the wall-clock completion time in whole seconds.
	// 0 means no time was recorded; such records never rank.
	Realtime int `gorm:"column:realtime" json:"realtime"`
	// Gametime is the in-game-clock completion time in whole seconds.
	Gametime int    `gorm:"column:gametime" json:"gametime"`
	Comment  string `gorm:"column:comment" json:"comment"`
	Video    string `gorm:"column:video" json:"video"`
	// Active is 1 on the runner's best record for a category/region,
	// 0 on every superseded record.
	Active int `gorm:"column:active" json:"active"`
}

// TableName overrides the table name used by GORM.
func (Record) TableName() string { return "records" }

// IsActive reports whether this record is the runner's current best
// for its category and region.
func (r Record) IsActive() bool { return r.Active == 1 }

// RealtimeString renders the realtime for display.
func (r Record) RealtimeString() string { return FormatSeconds(r.Realtime) }

// GametimeString renders the gametime for display.
func (r Record) GametimeString() string { return FormatSeconds(r.Gametime) }

// ObservedRun is the normalized shape the reconciliation engine consumes:
// one run observation from a single source, with the runner already resolved
// and the category/region already classified.
type ObservedRun struct {
	Source   Source
	DtID     int
	SrcID    string
	Runner   Runner
	Category Category
	Region   Region
	Realtime int
	Gametime int
	Comment  string
	Video    string
}
