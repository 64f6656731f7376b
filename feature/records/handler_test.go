package records_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"shaktool/core/database"
	"shaktool/feature/records"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)

	app := fiber.New()
	feature := records.NewFeature(zap.NewNop(), db)
	assert.True(t, feature.IsEnabled())
	assert.Equal(t, "records", feature.Name())
	assert.NoError(t, feature.Load(app))
	return app
}

func ingestFixture(t *testing.T, app *fiber.App) {
	t.Helper()

	req := httptest.NewRequest("POST", "/records/ingest/deertier", strings.NewReader(deerTierPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleIngestDeerTier(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest("POST", "/records/ingest/deertier", strings.NewReader(deerTierPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary records.IngestSummary
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, "deertier", summary.Source)
	assert.Equal(t, 2, summary.Runs)
	assert.Equal(t, 1, summary.Skipped)
}

func TestHandleIngestSpeedrun(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest("POST", "/records/ingest/speedrun", strings.NewReader(srcPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleIngestInvalidPayload(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest("POST", "/records/ingest/deertier", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleTop(t *testing.T) {
	app := newApp(t)
	ingestFixture(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/records/top?category=any%25", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var views []records.RecordView
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &views))
	assert.Len(t, views, 2)
	assert.Equal(t, "Behemoth87", views[0].Runner)
	assert.Equal(t, 1, views[0].Rank)
}

func TestHandleTopUnknownCategory(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/records/top?category=bogus", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleWorldRecordEmpty(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/records/wr?category=rbo", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlePersonalBest(t *testing.T) {
	app := newApp(t)
	ingestFixture(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/records/pb?runner=zoast&category=any%25", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view records.RecordView
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "zoast", view.Runner)
	assert.Equal(t, "42:10", view.Realtime)
}

func TestHandleRunnerRecords(t *testing.T) {
	app := newApp(t)
	ingestFixture(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/records/runner?name=Behemoth87", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/records/runner?name=nobody", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleSubmit(t *testing.T) {
	app := newApp(t)

	payload := `{"runner": "newperson", "category": "ceres", "realtime": "00:47"}`
	req := httptest.NewRequest("POST", "/records/submit", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view records.RecordView
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "newperson", view.Runner)
	assert.Equal(t, 1, view.Rank)
}

func TestHandleSubmitInvalid(t *testing.T) {
	app := newApp(t)

	payload := `{"runner": "x", "category": "nope", "realtime": "41:00"}`
	req := httptest.NewRequest("POST", "/records/submit", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
