package http

import (
	"resume-builder/internal/logging"
	"resume-builder/internal/model"

	"github.com/gofiber/fiber/v2"
)

type aiResumeReq struct {
	ResumeData *model.ResumeData `json:"resumeData"`
	Role       string            `json:"role"`
}

// resume returns the posted resume, or the current draft when none was sent.
func (h *Handler) resume(req aiResumeReq) model.ResumeData {
	if req.ResumeData != nil {
		return req.ResumeData.Normalize()
	}
	return h.store.Current()
}

func roleOr(role string, data model.ResumeData) string {
	if role != "" {
		return role
	}
	return data.SelectedRole
}

func (h *Handler) Suggestions(c *fiber.Ctx) error {
	var req aiResumeReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	data := h.resume(req)
	out, err := h.ai.Suggestions(c.UserContext(), data, roleOr(req.Role, data))
	if err != nil {
		logging.Logger.WithError(err).Error("AI suggestions error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate AI suggestions"})
	}
	return c.JSON(fiber.Map{"suggestions": out})
}

func (h *Handler) Score(c *fiber.Ctx) error {
	var req aiResumeReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	data := h.resume(req)
	out, err := h.ai.Score(c.UserContext(), data, roleOr(req.Role, data))
	if err != nil {
		logging.Logger.WithError(err).Error("AI scoring error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate resume score"})
	}
	return c.JSON(out)
}

type enhanceReq struct {
	Text string `json:"text"`
	Type string `json:"type"`
	Role string `json:"role"`
}

func (h *Handler) Enhance(c *fiber.Ctx) error {
	var req enhanceReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	out, err := h.ai.Enhance(c.UserContext(), req.Text, req.Type, req.Role)
	if err != nil {
		logging.Logger.WithError(err).Error("AI enhancement error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enhance content"})
	}
	return c.JSON(out)
}

func (h *Handler) SkillsForRole(c *fiber.Ctx) error {
	out, err := h.ai.SkillsForRole(c.UserContext(), c.Params("role"))
	if err != nil {
		logging.Logger.WithError(err).Error("Skill suggestions error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get skill suggestions"})
	}
	return c.JSON(fiber.Map{"skills": out})
}

// WizardSkillSuggestions fetches skills for the draft's role under a context
// tied to the current wizard step. If the user moves on before the reply
// arrives the result is discarded.
func (h *Handler) WizardSkillSuggestions(c *fiber.Ctx) error {
	role := c.Query("role", h.store.Current().SelectedRole)
	ctx, cancel := h.wizard.StepContext(c.UserContext())
	defer cancel()

	out, err := h.ai.SkillsForRole(ctx, role)
	if ctx.Err() != nil && c.UserContext().Err() == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Step changed, suggestions discarded"})
	}
	if err != nil {
		logging.Logger.WithError(err).Error("Skill suggestions error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get skill suggestions"})
	}
	return c.JSON(fiber.Map{"skills": out})
}
