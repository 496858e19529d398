package http

import (
	"strconv"

	"resume-builder/internal/model"
	"resume-builder/internal/wizard"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) WizardState(c *fiber.Ctx) error {
	return c.JSON(h.wizard.State())
}

// transitionResult writes the wizard state after a transition. A failed
// transition reports its errors alongside the unchanged state.
func (h *Handler) transitionResult(c *fiber.Ctx, err error, msg string) error {
	if err == nil {
		return c.JSON(h.wizard.State())
	}
	status := HTTPStatus(err)
	body := fiber.Map{"error": msg, "state": h.wizard.State()}
	if fields := validationFields(err); fields != nil {
		body["fields"] = fields
	} else {
		body["reason"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

func (h *Handler) WizardNext(c *fiber.Ctx) error {
	_, err := h.wizard.Next()
	return h.transitionResult(c, err, "Please fix the highlighted fields")
}

func (h *Handler) WizardBack(c *fiber.Ctx) error {
	_, err := h.wizard.Back()
	return h.transitionResult(c, err, "Cannot go back")
}

func (h *Handler) WizardComplete(c *fiber.Ctx) error {
	_, err := h.wizard.Complete()
	return h.transitionResult(c, err, "Cannot complete yet")
}

func (h *Handler) WizardRestart(c *fiber.Ctx) error {
	h.wizard.Restart()
	return c.JSON(h.wizard.State())
}

type roleReq struct {
	Role string `json:"role"`
}

func (h *Handler) WizardRole(c *fiber.Ctx) error {
	var req roleReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if _, err := h.wizard.SelectRole(req.Role); err != nil {
		return fail(c, err, "Unknown role")
	}
	return c.JSON(h.wizard.State())
}

// WizardPersonal stores the personal info. With ?advance=true it also tries
// to move to the next step, like submitting the form.
func (h *Handler) WizardPersonal(c *fiber.Ctx) error {
	var p model.PersonalInfo
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	if c.QueryBool("advance") {
		_, err := h.wizard.SubmitPersonalInfo(p)
		return h.transitionResult(c, err, "Please fix the highlighted fields")
	}
	h.wizard.SetPersonalInfo(p)
	return c.JSON(h.wizard.State())
}

func (h *Handler) WizardEducation(c *fiber.Ctx) error {
	var e model.Education
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	if c.QueryBool("advance") {
		_, err := h.wizard.SubmitEducation(e)
		return h.transitionResult(c, err, "Please fix the highlighted fields")
	}
	h.wizard.SetEducation(e)
	return c.JSON(h.wizard.State())
}

type summaryReq struct {
	Summary string `json:"summary"`
}

func (h *Handler) WizardSummary(c *fiber.Ctx) error {
	var req summaryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.wizard.SetSummary(req.Summary)
	return c.JSON(h.wizard.State())
}

type skillReq struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *Handler) WizardAddSkill(c *fiber.Ctx) error {
	var req skillReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.wizard.AddSuggestedSkill(req.Name, req.Category)
	return c.JSON(h.wizard.State())
}

func (h *Handler) WizardRemoveSkill(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return badRequest(c, "invalid index")
	}
	if _, err := h.wizard.RemoveSkill(i); err != nil {
		return fail(c, err, "Skill not found")
	}
	return c.JSON(h.wizard.State())
}

func (h *Handler) WizardAddProject(c *fiber.Ctx) error {
	var in wizard.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid payload")
	}
	if _, err := h.wizard.AddProject(in); err != nil {
		return fail(c, err, "Please fix the highlighted fields")
	}
	return c.JSON(h.wizard.State())
}

func (h *Handler) WizardRemoveProject(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return badRequest(c, "invalid index")
	}
	if _, err := h.wizard.RemoveProject(i); err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(h.wizard.State())
}
