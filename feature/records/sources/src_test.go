package sources_test

import (
	"strings"
	"testing"

	"shaktool/feature/records/models"
	"shaktool/feature/records/sources"

	"github.com/stretchr/testify/assert"
)

const srcLeaderboardJSON = `{
  "data": {
    "weblink": "https://www.speedrun.com/supermetroid#Any",
    "game": "m1zoemd0",
    "category": "9d8v96lk",
    "runs": [
      {
        "place": 1,
        "run": {
          "id": "y4o0l9vz",
          "category": "9d8v96lk",
          "videos": {"links": [{"uri": "https://youtu.be/wr-video"}]},
          "comment": "new wr",
          "players": [{"rel": "user", "id": "zx7gd1yz"}],
          "times": {"primary_t": 2483.0, "realtime_t": 2483.0, "ingame_t": 1680.0},
          "values": {"wle6dpr8": "21gezkxl"}
        }
      },
      {
        "place": 2,
        "run": {
          "id": "m3qwopvz",
          "category": "9d8v96lk",
          "videos": null,
          "comment": null,
          "players": [{"rel": "guest", "name": "anonguest"}],
          "times": {"primary_t": 2900.5, "realtime_t": 2900.5, "ingame_t": 0},
          "values": {"wle6dpr8": "jqzvzo4l"}
        }
      },
      {
        "place": 3,
        "run": {
          "id": "o5qp17vz",
          "category": "9d8v96lk",
          "videos": null,
          "comment": null,
          "players": [{"rel": "user", "id": "notembedded"}],
          "times": {"primary_t": 3000.0, "realtime_t": 3000.0, "ingame_t": 0},
          "values": {}
        }
      }
    ],
    "players": {
      "data": [
        {
          "rel": "user",
          "id": "zx7gd1yz",
          "names": {"international": "Behemoth87", "japanese": null}
        },
        {
          "rel": "guest",
          "name": "anonguest"
        }
      ]
    }
  }
}`

func TestDecodeSpeedrun(t *testing.T) {
	lb, err := sources.DecodeSpeedrun(strings.NewReader(srcLeaderboardJSON))
	assert.NoError(t, err)
	assert.Equal(t, "9d8v96lk", lb.Category)
	assert.Len(t, lb.Runs, 3)
	assert.Len(t, lb.Players.Data, 2)
}

func TestDecodeSpeedrunInvalid(t *testing.T) {
	_, err := sources.DecodeSpeedrun(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, sources.ErrInvalidData)

	_, err = sources.DecodeSpeedrun(strings.NewReader(`{"status": 404}`))
	assert.ErrorIs(t, err, sources.ErrInvalidData)
}

func TestSpeedrunNormalize(t *testing.T) {
	lb, err := sources.DecodeSpeedrun(strings.NewReader(srcLeaderboardJSON))
	assert.NoError(t, err)

	runs := lb.Normalize()
	// The third run's player is not embedded, so it is skipped.
	assert.Len(t, runs, 2)

	wr := runs[0]
	assert.Equal(t, models.SourceSpeedrun, wr.Source)
	assert.Equal(t, "y4o0l9vz", wr.SrcID)
	assert.Equal(t, "Behemoth87", wr.RunnerName)
	assert.Equal(t, "zx7gd1yz", wr.RunnerSrcID)
	assert.Equal(t, "zx7gd1yz", wr.SourceUserID())
	assert.Equal(t, models.AnyPercent, wr.Category)
	assert.Equal(t, models.NTSC, wr.Region)
	assert.Equal(t, 2483, wr.Realtime)
	assert.Equal(t, 1680, wr.Gametime)
	assert.Equal(t, "new wr", wr.Comment)
	assert.Equal(t, "https://youtu.be/wr-video", wr.Video)

	guest := runs[1]
	assert.Equal(t, "anonguest", guest.RunnerName)
	assert.Empty(t, guest.RunnerSrcID)
	assert.Equal(t, models.PAL, guest.Region)
	// Fractional seconds truncate to whole seconds.
	assert.Equal(t, 2900, guest.Realtime)
	assert.Empty(t, guest.Video)
}
