package sources_test

import (
	"strings"
	"testing"

	"shaktool/feature/records/models"
	"shaktool/feature/records/sources"

	"github.com/stretchr/testify/assert"
)

const deerTierJSON = `[
  {
    "ID": 4821,
    "Username": "Behemoth87",
    "Category": "AnyPercentRealTime",
    "RealTime": "41:23",
    "GameTime": "00:28",
    "EscapeGameTime": null,
    "VideoUrl": "https://youtu.be/abc123",
    "Comment": "finally sub 42",
    "DateSubmitted": "2019-03-14T12:00:00"
  },
  {
    "ID": 4822,
    "Username": "palrunner",
    "Category": "PALAnyPercentRealTime",
    "RealTime": "45:00",
    "GameTime": null,
    "EscapeGameTime": null,
    "VideoUrl": null,
    "Comment": null,
    "DateSubmitted": null
  }
]`

func TestDecodeDeerTier(t *testing.T) {
	records, err := sources.DecodeDeerTier(strings.NewReader(deerTierJSON))
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 4821, records[0].ID)
	assert.Equal(t, "Behemoth87", records[0].Username)
}

func TestDecodeDeerTierInvalid(t *testing.T) {
	_, err := sources.DecodeDeerTier(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, sources.ErrInvalidData)
}

func TestDeerTierNormalize(t *testing.T) {
	records, err := sources.DecodeDeerTier(strings.NewReader(deerTierJSON))
	assert.NoError(t, err)

	run, err := records[0].Normalize()
	assert.NoError(t, err)
	assert.Equal(t, models.SourceDeerTier, run.Source)
	assert.Equal(t, 4821, run.DtID)
	assert.Equal(t, "Behemoth87", run.RunnerName)
	// On deertier the username is the runner identifier.
	assert.Equal(t, "Behemoth87", run.RunnerDtID)
	assert.Equal(t, "Behemoth87", run.SourceUserID())
	assert.Equal(t, models.AnyPercent, run.Category)
	assert.Equal(t, models.NTSC, run.Region)
	assert.Equal(t, 2483, run.Realtime)
	// The game clock reads hours:minutes, so 00:28 is 28 minutes.
	assert.Equal(t, 1680, run.Gametime)
	assert.Equal(t, "https://youtu.be/abc123", run.Video)
	assert.Equal(t, "finally sub 42", run.Comment)

	pal, err := records[1].Normalize()
	assert.NoError(t, err)
	assert.Equal(t, models.PAL, pal.Region)
	assert.Equal(t, 0, pal.Gametime)
	assert.Empty(t, pal.Video)
}

func TestDeerTierNormalizeInvalid(t *testing.T) {
	_, err := sources.DeerTierRecord{ID: 0, Username: "x"}.Normalize()
	assert.ErrorIs(t, err, sources.ErrInvalidData)

	_, err = sources.DeerTierRecord{ID: 1, Username: ""}.Normalize()
	assert.ErrorIs(t, err, sources.ErrInvalidData)

	bad := "not a time"
	_, err = sources.DeerTierRecord{ID: 1, Username: "x", RealTime: &bad}.Normalize()
	assert.ErrorIs(t, err, sources.ErrInvalidData)
}

func TestDeerTierNormalizeUnknownCategory(t *testing.T) {
	// Unknown boards still normalize; classification is total.
	run, err := sources.DeerTierRecord{ID: 9, Username: "x", Category: "BrandNewBoard"}.Normalize()
	assert.NoError(t, err)
	assert.Equal(t, models.CategoryUnknown, run.Category)
}
