package sources

import (
	"encoding/json"
	"fmt"
	"io"

	"shaktool/feature/records/classify"
	"shaktool/feature/records/models"
)

// DeerTierRecord is one entry of the deertier /api/records payload.
type DeerTierRecord struct {
	ID             int     `json:"ID"`
	Username       string  `json:"Username"`
	Category       string  `json:"Category"`
	RealTime       *string `json:"RealTime"`
	GameTime       *string `json:"GameTime"`
	EscapeGameTime *string `json:"EscapeGameTime"`
	VideoUrl       *string `json:"VideoUrl"`
	Comment        *string `json:"Comment"`
	DateSubmitted  *string `json:"DateSubmitted"`
}

// DecodeDeerTier parses a full deertier records payload.
func DecodeDeerTier(r io.Reader) ([]DeerTierRecord, error) {
	var records []DeerTierRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: deertier records: %v", ErrInvalidData, err)
	}
	return records, nil
}

// Normalize converts a deertier record into the normalized run shape.
// On deertier the username doubles as the runner's identifier.
func (d DeerTierRecord) Normalize() (Run, error) {
	if d.ID == 0 || d.Username == "" {
		return Run{}, fmt.Errorf("%w: deertier record missing id or username", ErrInvalidData)
	}

	category, region := classify.FromDeerTier(d.Category)

	realtime, err := models.ParseClockTime(deref(d.RealTime))
	if err != nil {
		return Run{}, fmt.Errorf("%w: deertier record %d: %v", ErrInvalidData, d.ID, err)
	}

	// Deertier reports the game-clock time as hours:minutes, so the parsed
	// minutes value converts to seconds with another factor of sixty.
	gametime, err := models.ParseClockTime(deref(d.GameTime))
	if err != nil {
		return Run{}, fmt.Errorf("%w: deertier record %d: %v", ErrInvalidData, d.ID, err)
	}
	gametime *= 60

	return Run{
		Source:     models.SourceDeerTier,
		DtID:       d.ID,
		RunnerName: d.Username,
		RunnerDtID: d.Username,
		Category:   category,
		Region:     region,
		Realtime:   realtime,
		Gametime:   gametime,
		Comment:    deref(d.Comment),
		Video:      deref(d.VideoUrl),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
