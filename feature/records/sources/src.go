package sources

import (
	"encoding/json"
	"fmt"
	"io"

	"shaktool/core/utils"
	"shaktool/feature/records/classify"
	"shaktool/feature/records/models"
)

// SrcLeaderboard is one speedrun.com leaderboard response with players
// embedded, as returned by /leaderboards/{game}/category/{category}.
type SrcLeaderboard struct {
	Weblink  string              `json:"weblink"`
	Game     string              `json:"game"`
	Category string              `json:"category"`
	Runs     []SrcLeaderboardRun `json:"runs"`
	Players  SrcPlayersData      `json:"players"`
}

// SrcLeaderboardRun is a placed run on a leaderboard.
type SrcLeaderboardRun struct {
	Place int    `json:"place"`
	Run   SrcRun `json:"run"`
}

// SrcRun is one run as speedrun.com reports it.
type SrcRun struct {
	ID       string            `json:"id"`
	Category string            `json:"category"`
	Videos   *SrcVideos        `json:"videos"`
	Comment  *string           `json:"comment"`
	Players  []SrcPlayerRef    `json:"players"`
	Times    SrcTimes          `json:"times"`
	Values   map[string]string `json:"values"`
}

// SrcTimes carries the run's times as fractional seconds.
type SrcTimes struct {
	Primary   *string  `json:"primary"`
	PrimaryT  *float64 `json:"primary_t"`
	Realtime  *string  `json:"realtime"`
	RealtimeT *float64 `json:"realtime_t"`
	Ingame    *string  `json:"ingame"`
	IngameT   *float64 `json:"ingame_t"`
}

// SrcPlayerRef is a run's reference to a player, either a registered user
// (by id) or a guest (by free-text name).
type SrcPlayerRef struct {
	Rel  string  `json:"rel"`
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// SrcPlayersData is the embedded player list of a leaderboard response.
type SrcPlayersData struct {
	Data []SrcUser `json:"data"`
}

// SrcUser is an embedded player: a registered user carries an id and a names
// block, a guest carries only a name.
type SrcUser struct {
	Rel   string    `json:"rel"`
	ID    *string   `json:"id"`
	Name  *string   `json:"name"`
	Names *SrcNames `json:"names"`
}

// SrcNames holds a registered user's display names.
type SrcNames struct {
	International string  `json:"international"`
	Japanese      *string `json:"japanese"`
}

// SrcVideos holds a run's video links.
type SrcVideos struct {
	Text  *string   `json:"text"`
	Links []SrcLink `json:"links"`
}

// SrcLink is a single video link.
type SrcLink struct {
	URI *string `json:"uri"`
}

// DecodeSpeedrun parses one speedrun.com leaderboard payload, unwrapping the
// API's "data" envelope.
func DecodeSpeedrun(r io.Reader) (*SrcLeaderboard, error) {
	var envelope struct {
		Data *SrcLeaderboard `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: speedrun.com leaderboard: %v", ErrInvalidData, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: speedrun.com leaderboard missing data", ErrInvalidData)
	}
	return envelope.Data, nil
}

// Normalize converts every run on the leaderboard into the normalized run
// shape. Runs whose player cannot be matched against the embedded player
// list are skipped, mirroring how the source reports orphaned entries.
func (lb *SrcLeaderboard) Normalize() []Run {
	runs := make([]Run, 0, len(lb.Runs))
	for _, entry := range lb.Runs {
		run, err := lb.normalizeRun(entry.Run)
		if err != nil {
			continue
		}
		runs = append(runs, run)
	}
	return runs
}

func (lb *SrcLeaderboard) normalizeRun(sr SrcRun) (Run, error) {
	if sr.ID == "" {
		return Run{}, fmt.Errorf("%w: speedrun.com run missing id", ErrInvalidData)
	}
	if len(sr.Players) == 0 {
		return Run{}, fmt.Errorf("%w: speedrun.com run %s has no players", ErrInvalidData, sr.ID)
	}

	user, err := lb.findUser(sr.Players[0])
	if err != nil {
		return Run{}, err
	}

	category, region := classify.FromSpeedrun(sr.Category, sr.Values)

	run := Run{
		Source:   models.SourceSpeedrun,
		SrcID:    sr.ID,
		Category: category,
		Region:   region,
		Realtime: utils.ToSeconds(derefFloat(sr.Times.RealtimeT)),
		Gametime: utils.ToSeconds(derefFloat(sr.Times.IngameT)),
		Comment:  deref(sr.Comment),
		Video:    firstVideo(sr.Videos),
	}

	if user.Rel == "user" && user.ID != nil && user.Names != nil {
		run.RunnerSrcID = *user.ID
		run.RunnerName = user.Names.International
	} else {
		run.RunnerName = deref(user.Name)
	}
	if run.RunnerName == "" {
		return Run{}, fmt.Errorf("%w: speedrun.com run %s has unnamed player", ErrInvalidData, sr.ID)
	}
	return run, nil
}

// findUser matches a run's player reference against the embedded player
// list, by user id for registered users and by name for guests.
func (lb *SrcLeaderboard) findUser(ref SrcPlayerRef) (*SrcUser, error) {
	for i := range lb.Players.Data {
		user := &lb.Players.Data[i]
		if ref.Rel == "user" {
			if user.ID != nil && ref.ID != nil && *user.ID == *ref.ID {
				return user, nil
			}
		} else {
			if user.Name != nil && ref.Name != nil && *user.Name == *ref.Name {
				return user, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: player not embedded in leaderboard", ErrInvalidData)
}

func firstVideo(v *SrcVideos) string {
	if v == nil || len(v.Links) == 0 {
		return ""
	}
	return deref(v.Links[0].URI)
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
