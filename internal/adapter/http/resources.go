package http

import (
	"errors"
	"mime"

	"resume-builder/internal/draft"
	"resume-builder/internal/layout"
	"resume-builder/internal/logging"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	out, err := h.snapshots.Resumes(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch resumes"})
	}
	return c.JSON(out)
}

// SaveResume stores a complete resume. Every leaf must validate.
func (h *Handler) SaveResume(c *fiber.Ctx) error {
	data, err := draft.Decode(c.Body())
	if err != nil {
		return badRequest(c, "invalid payload")
	}
	if data, err = model.Validate(data); err != nil {
		return fail(c, err, "Please fix the highlighted fields")
	}
	snap, err := h.snapshots.Save(c.UserContext(), data)
	if err != nil {
		logging.Logger.WithError(err).Error("save resume failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save resume"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Resume saved successfully", "id": snap.Key})
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	ok, err := h.snapshots.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete resume"})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resume not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Roles(c *fiber.Ctx) error {
	return c.JSON(model.Roles())
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(layout.Catalog())
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(h.store.Current())
}

// PutDraft replaces the in-memory draft. It checks the document shape only;
// per-step rules apply when the wizard advances.
func (h *Handler) PutDraft(c *fiber.Ctx) error {
	data, err := draft.Decode(c.Body())
	if err != nil {
		return fail(c, err, "invalid draft")
	}
	h.store.Replace(data)
	return c.JSON(h.store.Current())
}

func (h *Handler) SaveDraft(c *fiber.Ctx) error {
	if err := h.store.SaveCurrent(c.UserContext()); err != nil {
		logging.Logger.WithError(err).Error("draft save failed")
		return fail(c, err, "Failed to save draft")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Draft saved"})
}

func (h *Handler) LoadDraft(c *fiber.Ctx) error {
	data, found := h.store.Restore(c.UserContext())
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No saved draft found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Draft loaded", "resume": data})
}

type exportPDFReq struct {
	TemplateID string            `json:"templateId"`
	ResumeData *model.ResumeData `json:"resumeData"`
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	var req exportPDFReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	data := h.store.Current()
	if req.ResumeData != nil {
		data = req.ResumeData.Normalize()
	}

	art, err := h.exporter.ExportPDF(c.UserContext(), data, req.TemplateID)
	if err != nil {
		return exportFailed(c, err)
	}
	return sendArtifact(c, art)
}

type exportQRReq struct {
	Text string `json:"text"`
}

// ExportQR returns the PNG, or {"dataUri", "fileName"} with ?format=datauri.
func (h *Handler) ExportQR(c *fiber.Ctx) error {
	var req exportQRReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	art, err := h.exporter.ExportQR(c.UserContext(), req.Text)
	if err != nil {
		return exportFailed(c, err)
	}
	if c.Query("format") == "datauri" {
		return c.JSON(fiber.Map{"dataUri": art.DataURI(), "fileName": art.FileName})
	}
	return sendArtifact(c, art)
}

func exportFailed(c *fiber.Ctx, err error) error {
	var ee *usecase.ExportError
	if !errors.As(err, &ee) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Export failed"})
	}
	logging.Logger.WithError(err).WithField("kind", string(ee.Kind)).Warn("export failed")
	return c.Status(HTTPStatus(err)).JSON(fiber.Map{"error": ee.Message, "kind": ee.Kind})
}

func sendArtifact(c *fiber.Ctx, art *usecase.Artifact) error {
	c.Set(fiber.HeaderContentType, art.ContentType)
	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": art.FileName}))
	return c.Send(art.Data)
}
