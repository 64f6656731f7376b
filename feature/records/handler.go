package records

import (
	"bytes"
	"errors"

	"shaktool/core/logger"
	"shaktool/feature/records/sources"
	"shaktool/feature/records/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for records.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the records routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/records")
	group.Get("/top", h.HandleTop)
	group.Get("/wr", h.HandleWorldRecord)
	group.Get("/pb", h.HandlePersonalBest)
	group.Get("/runner", h.HandleRunnerRecords)
	group.Post("/submit", h.HandleSubmit)
	group.Post("/ingest/deertier", h.HandleIngestDeerTier)
	group.Post("/ingest/speedrun", h.HandleIngestSpeedrun)
}

// HandleTop returns the top records for a category.
// @Summary Top records
// @Description Get the top 10 records for a category, fastest first.
// @Tags records
// @Produce json
// @Param category query string true "Category name (e.g. 'any%')"
// @Success 200 {array} records.RecordView "Top records"
// @Failure 404 {object} map[string]string "No records found"
// @Router /records/top [get]
func (h *Handler) HandleTop(c *fiber.Ctx) error {
	views, err := h.service.Top(c.Query("category"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(views)
}

// HandleWorldRecord returns the world record for a category.
// @Summary World record
// @Description Get the single fastest record for a category.
// @Tags records
// @Produce json
// @Param category query string true "Category name (e.g. 'any%')"
// @Success 200 {object} records.RecordView "World record"
// @Failure 404 {object} map[string]string "No records found"
// @Router /records/wr [get]
func (h *Handler) HandleWorldRecord(c *fiber.Ctx) error {
	view, err := h.service.WorldRecord(c.Query("category"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(view)
}

// HandlePersonalBest returns a runner's personal best for a category.
// @Summary Personal best
// @Description Get a runner's personal best record for a category.
// @Tags records
// @Produce json
// @Param runner query string true "Runner display name"
// @Param category query string true "Category name (e.g. 'any%')"
// @Success 200 {object} records.RecordView "Personal best"
// @Failure 404 {object} map[string]string "No records found"
// @Router /records/pb [get]
func (h *Handler) HandlePersonalBest(c *fiber.Ctx) error {
	view, err := h.service.PersonalBest(c.Query("runner"), c.Query("category"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(view)
}

// HandleRunnerRecords returns all active records for a runner.
// @Summary Runner records
// @Description Get all active records for a runner, ordered by category.
// @Tags records
// @Produce json
// @Param name query string true "Runner display name"
// @Success 200 {array} records.RecordView "Runner records"
// @Failure 404 {object} map[string]string "No records found"
// @Router /records/runner [get]
func (h *Handler) HandleRunnerRecords(c *fiber.Ctx) error {
	views, err := h.service.RunnerRecords(c.Query("name"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(views)
}

// HandleSubmit reconciles a manually submitted run.
// @Summary Submit run
// @Description Submit a run for reconciliation into the canonical record set.
// @Tags records
// @Accept json
// @Produce json
// @Param run body records.SubmitRequest true "Run submission"
// @Success 200 {object} records.RecordView "Reconciled record"
// @Failure 400 {object} map[string]string "Invalid submission"
// @Router /records/submit [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	view, err := h.service.Submit(req)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(view)
}

// HandleIngestDeerTier reconciles a saved deertier records payload.
// @Summary Ingest deertier payload
// @Description Reconcile a full deertier records payload into the record set.
// @Tags records
// @Accept json
// @Produce json
// @Success 200 {object} records.IngestSummary "Ingestion summary"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /records/ingest/deertier [post]
func (h *Handler) HandleIngestDeerTier(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	summary, err := h.service.IngestDeerTier(bytes.NewReader(c.Body()))
	if err != nil {
		l.Error("Deertier ingestion failed", zap.Error(err))
		return h.renderError(c, err)
	}

	l.Info("Deertier ingestion complete",
		zap.Int("runs", summary.Runs),
		zap.Int("skipped", summary.Skipped),
	)
	return c.JSON(summary)
}

// HandleIngestSpeedrun reconciles a saved speedrun.com leaderboard payload.
// @Summary Ingest speedrun.com payload
// @Description Reconcile one speedrun.com leaderboard payload into the record set.
// @Tags records
// @Accept json
// @Produce json
// @Success 200 {object} records.IngestSummary "Ingestion summary"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /records/ingest/speedrun [post]
func (h *Handler) HandleIngestSpeedrun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	summary, err := h.service.IngestSpeedrun(bytes.NewReader(c.Body()))
	if err != nil {
		l.Error("Speedrun.com ingestion failed", zap.Error(err))
		return h.renderError(c, err)
	}

	l.Info("Speedrun.com ingestion complete",
		zap.Int("runs", summary.Runs),
		zap.Int("skipped", summary.Skipped),
	)
	return c.JSON(summary)
}

// renderError maps the error taxonomy onto HTTP statuses.
func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no records found",
		})
	case errors.Is(err, ErrUnknownCategory), errors.Is(err, sources.ErrInvalidData):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		h.logger.Error("Record query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
