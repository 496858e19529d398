// Package http exposes the resume builder over a fiber REST API.
package http

import (
	"context"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/draft"
	"resume-builder/internal/logging"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/internal/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AIService is the AI collaborator. Its results are display-only.
type AIService interface {
	Suggestions(ctx context.Context, data model.ResumeData, role string) ([]model.AISuggestion, error)
	Score(ctx context.Context, data model.ResumeData, role string) (*model.ResumeScore, error)
	Enhance(ctx context.Context, text, kind, role string) (*model.Enhancement, error)
	SkillsForRole(ctx context.Context, role string) ([]model.Skill, error)
}

// SnapshotRepo stores resumes posted to /api/resumes.
type SnapshotRepo interface {
	Save(ctx context.Context, data model.ResumeData) (*domain.Snapshot, error)
	Resumes(ctx context.Context) ([]model.ResumeData, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type Handler struct {
	store     *draft.Store
	wizard    *wizard.Wizard
	exporter  *usecase.Exporter
	ai        AIService
	snapshots SnapshotRepo
}

func NewHandler(store *draft.Store, wz *wizard.Wizard, exporter *usecase.Exporter, aiSvc AIService, snapshots SnapshotRepo) *Handler {
	return &Handler{store: store, wizard: wz, exporter: exporter, ai: aiSvc, snapshots: snapshots}
}

// Options tune the middleware stack.
type Options struct {
	// AIRequestsPerMinute limits AI calls per client IP. Zero disables it.
	AIRequestsPerMinute int
}

// NewApp builds the fiber application with middleware and every route.
func NewApp(h *Handler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "resume-builder",
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: func() string { return uuid.New().String() }}))
	app.Use(requestLogger)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	h.RegisterRoutes(app, opts)
	return app
}

func (h *Handler) RegisterRoutes(app *fiber.App, opts Options) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	var aiLimit []fiber.Handler
	if opts.AIRequestsPerMinute > 0 {
		aiLimit = append(aiLimit, limiter.New(limiter.Config{
			Max:        opts.AIRequestsPerMinute,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many AI requests, please try again later"})
			},
		}))
	}
	aiGroup := api.Group("/ai", aiLimit...)
	aiGroup.Post("/suggestions", h.Suggestions)
	aiGroup.Post("/score", h.Score)
	aiGroup.Post("/enhance", h.Enhance)
	api.Get("/skills/:role", append(aiLimit, h.SkillsForRole)...)

	api.Get("/resumes", h.ListResumes)
	api.Post("/resumes", h.SaveResume)
	api.Delete("/resumes/:id", h.DeleteResume)

	api.Get("/roles", h.Roles)
	api.Get("/templates", h.Templates)

	api.Get("/draft", h.GetDraft)
	api.Put("/draft", h.PutDraft)
	api.Post("/draft/save", h.SaveDraft)
	api.Post("/draft/load", h.LoadDraft)

	wz := api.Group("/wizard")
	wz.Get("/", h.WizardState)
	wz.Post("/next", h.WizardNext)
	wz.Post("/back", h.WizardBack)
	wz.Post("/complete", h.WizardComplete)
	wz.Post("/restart", h.WizardRestart)
	wz.Post("/role", h.WizardRole)
	wz.Put("/personal", h.WizardPersonal)
	wz.Put("/education", h.WizardEducation)
	wz.Put("/summary", h.WizardSummary)
	wz.Post("/skills", h.WizardAddSkill)
	wz.Delete("/skills/:index", h.WizardRemoveSkill)
	wz.Post("/projects", h.WizardAddProject)
	wz.Delete("/projects/:index", h.WizardRemoveProject)
	wz.Get("/skill-suggestions", append(aiLimit, h.WizardSkillSuggestions)...)

	api.Post("/export/pdf", h.ExportPDF)
	api.Post("/export/qr", h.ExportQR)
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	entry := logging.Logger.WithFields(logrus.Fields{
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     c.Response().StatusCode(),
		"latency":    time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("http: request failed")
	} else {
		entry.Debug("http: request")
	}
	return err
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	if fe, ok := err.(*fiber.Error); ok {
		code, msg = fe.Code, fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
