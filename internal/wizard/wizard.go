// Package wizard drives the five step resume flow over the current draft.
package wizard

import (
	"context"
	"strings"
	"sync"

	"resume-builder/internal/logging"
	"resume-builder/internal/model"

	"github.com/sirupsen/logrus"
)

// DraftPort is the part of the draft store the wizard writes through.
type DraftPort interface {
	Current() model.ResumeData
	Replace(data model.ResumeData)
}

// ProjectInput is the project form as entered, with technologies still
// comma separated.
type ProjectInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link,omitempty"`
	GitHub       string `json:"github,omitempty"`
}

// State is a read-only view of the wizard.
type State struct {
	Step        Step             `json:"step"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TotalSteps  int              `json:"totalSteps"`
	Progress    float64          `json:"progress"`
	Completed   bool             `json:"completed"`
	Steps       []StepInfo       `json:"steps"`
	Resume      model.ResumeData `json:"resume"`
}

// Wizard holds the current step. Every successful mutation is written back
// through the draft port.
type Wizard struct {
	mu        sync.Mutex
	draft     DraftPort
	step      Step
	completed bool

	stepCtx    context.Context
	cancelStep context.CancelFunc
}

func New(draft DraftPort) *Wizard {
	w := &Wizard{draft: draft, step: StepPersonalInfo}
	w.stepCtx, w.cancelStep = context.WithCancel(context.Background())
	return w
}

// Current returns the active step.
func (w *Wizard) Current() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Completed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completed
}

// Progress is the completed share of the flow in percent.
func (w *Wizard) Progress() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return progress(w.step)
}

func progress(s Step) float64 {
	return float64(s) / float64(TotalSteps) * 100
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	info := w.step.Info()
	return State{
		Step:        w.step,
		Title:       info.Title,
		Description: info.Description,
		TotalSteps:  TotalSteps,
		Progress:    progress(w.step),
		Completed:   w.completed,
		Steps:       Steps(),
		Resume:      w.draft.Current(),
	}
}

// Next validates the active step against the draft and advances. On a
// validation failure the step is unchanged and the field errors are returned.
func (w *Wizard) Next() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.completed {
		return w.step, &TransitionError{From: w.step, Op: "next", Reason: "wizard is completed"}
	}
	if w.step >= StepSummary {
		return w.step, &TransitionError{From: w.step, Op: "next", Reason: "last step, use complete"}
	}

	data := w.draft.Current()
	if err := validateStep(w.step, data); err != nil {
		logging.Logger.WithFields(logrus.Fields{"step": int(w.step), "error": err}).Debug("wizard: step invalid")
		return w.step, err
	}
	w.draft.Replace(data)
	w.moveTo(w.step + 1)
	return w.step, nil
}

// Back moves to the previous step without validation.
func (w *Wizard) Back() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.completed {
		return w.step, &TransitionError{From: w.step, Op: "back", Reason: "wizard is completed"}
	}
	if w.step <= StepPersonalInfo {
		return w.step, &TransitionError{From: w.step, Op: "back", Reason: "already at the first step"}
	}
	w.draft.Replace(w.draft.Current())
	w.moveTo(w.step - 1)
	return w.step, nil
}

// Complete leaves the flow from the Summary step. The draft is then ready for
// export.
func (w *Wizard) Complete() (model.ResumeData, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.completed {
		return model.ResumeData{}, &TransitionError{From: w.step, Op: "complete", Reason: "wizard is already completed"}
	}
	if w.step != StepSummary {
		return model.ResumeData{}, &TransitionError{From: w.step, Op: "complete", Reason: "only the summary step can complete"}
	}
	data := w.draft.Current()
	w.draft.Replace(data)
	w.completed = true
	w.resetStepContext()
	logging.Logger.Info("wizard: completed")
	return data, nil
}

// Restart returns to the first step, keeping the draft.
func (w *Wizard) Restart() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.completed = false
	w.moveTo(StepPersonalInfo)
}

// StepContext returns a context derived from parent that is also cancelled
// once the wizard leaves the step that was active when it was created. AI
// requests made for a panel run under it so that late results are dropped.
func (w *Wizard) StepContext(parent context.Context) (context.Context, context.CancelFunc) {
	w.mu.Lock()
	stepCtx := w.stepCtx
	w.mu.Unlock()

	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(stepCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// moveTo must be called with mu held.
func (w *Wizard) moveTo(s Step) {
	if s != w.step {
		w.resetStepContext()
	}
	w.step = s
}

func (w *Wizard) resetStepContext() {
	w.cancelStep()
	w.stepCtx, w.cancelStep = context.WithCancel(context.Background())
}

func validateStep(s Step, data model.ResumeData) error {
	switch s {
	case StepPersonalInfo:
		return model.ValidatePersonalInfo(data.PersonalInfo)
	case StepEducation:
		var first model.Education
		if len(data.Education) > 0 {
			first = data.Education[0]
		}
		return model.ValidateEducation(first)
	default:
		return nil
	}
}

func (w *Wizard) update(fn func(*model.ResumeData)) model.ResumeData {
	data := w.draft.Current()
	fn(&data)
	w.draft.Replace(data)
	return data
}

// SetPersonalInfo replaces the personal info of the draft.
func (w *Wizard) SetPersonalInfo(p model.PersonalInfo) model.ResumeData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.update(func(d *model.ResumeData) { d.PersonalInfo = p })
}

// SetEducation replaces the primary education entry.
func (w *Wizard) SetEducation(e model.Education) model.ResumeData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.update(func(d *model.ResumeData) {
		if len(d.Education) == 0 {
			d.Education = []model.Education{e}
			return
		}
		d.Education[0] = e
	})
}

func (w *Wizard) SetSummary(summary string) model.ResumeData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.update(func(d *model.ResumeData) { d.Summary = summary })
}

// SelectRole records the target role. Unknown ids are rejected.
func (w *Wizard) SelectRole(roleID string) (model.ResumeData, error) {
	if _, ok := model.LookupRole(roleID); !ok {
		return model.ResumeData{}, &model.ValidationError{Field: "selectedRole", Reason: "unknown role"}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.update(func(d *model.ResumeData) { d.SelectedRole = roleID }), nil
}

// SubmitPersonalInfo stores p and attempts to advance, like submitting the
// step form.
func (w *Wizard) SubmitPersonalInfo(p model.PersonalInfo) (Step, error) {
	w.SetPersonalInfo(p)
	return w.Next()
}

func (w *Wizard) SubmitEducation(e model.Education) (Step, error) {
	w.SetEducation(e)
	return w.Next()
}

// AddSkill appends a technical skill. A blank name is ignored.
func (w *Wizard) AddSkill(name string) model.ResumeData {
	return w.AddSuggestedSkill(name, "technical")
}

// AddSuggestedSkill appends a skill with an explicit category, as picked
// from the suggestion list.
func (w *Wizard) AddSuggestedSkill(name, category string) model.ResumeData {
	w.mu.Lock()
	defer w.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return w.draft.Current()
	}
	if category == "" {
		category = "technical"
	}
	return w.update(func(d *model.ResumeData) {
		d.Skills = append(d.Skills, model.Skill{Name: name, Category: category})
	})
}

func (w *Wizard) RemoveSkill(index int) (model.ResumeData, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data := w.draft.Current()
	if index < 0 || index >= len(data.Skills) {
		return data, &IndexError{Collection: "skills", Index: index, Len: len(data.Skills)}
	}
	data.Skills = append(data.Skills[:index], data.Skills[index+1:]...)
	w.draft.Replace(data)
	return data, nil
}

// AddProject validates the entry and appends it.
func (w *Wizard) AddProject(in ProjectInput) (model.ResumeData, error) {
	p := model.Project{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Technologies: model.ParseTechnologies(in.Technologies),
		Link:         strings.TrimSpace(in.Link),
		GitHub:       strings.TrimSpace(in.GitHub),
	}
	if err := model.ValidateProject(p); err != nil {
		return model.ResumeData{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.update(func(d *model.ResumeData) { d.Projects = append(d.Projects, p) }), nil
}

func (w *Wizard) RemoveProject(index int) (model.ResumeData, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data := w.draft.Current()
	if index < 0 || index >= len(data.Projects) {
		return data, &IndexError{Collection: "projects", Index: index, Len: len(data.Projects)}
	}
	data.Projects = append(data.Projects[:index], data.Projects[index+1:]...)
	w.draft.Replace(data)
	return data, nil
}
