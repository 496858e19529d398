package wizard

import (
	"context"
	"testing"
	"time"

	"resume-builder/internal/draft"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopSlot struct{}

func (nopSlot) Read(context.Context) ([]byte, error) { return nil, draft.ErrSlotEmpty }
func (nopSlot) Write(context.Context, []byte) error  { return nil }

func newWizard() (*Wizard, *draft.Store) {
	store := draft.NewStore(nopSlot{})
	return New(store), store
}

func validPersonal() model.PersonalInfo {
	return model.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Title: "Developer"}
}

func TestNext_PersonalInfoValidation(t *testing.T) {
	w, store := newWizard()

	step, err := w.Next()
	var ve model.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields(), "personalInfo.firstName")
	assert.Equal(t, StepPersonalInfo, step)
	assert.Equal(t, StepPersonalInfo, w.Current())

	w.SetPersonalInfo(validPersonal())
	step, err = w.Next()
	require.NoError(t, err)
	assert.Equal(t, StepEducation, step)
	assert.Equal(t, "Jane", store.Current().PersonalInfo.FirstName)
}

func TestNext_EmptyFirstNameKeepsOtherFields(t *testing.T) {
	w, store := newWizard()
	p := validPersonal()
	p.FirstName = "   "

	_, err := w.SubmitPersonalInfo(p)
	require.Error(t, err)
	assert.Equal(t, StepPersonalInfo, w.Current())
	assert.Equal(t, "jane@x.com", store.Current().PersonalInfo.Email)
}

func TestNext_EducationRequiresPrimaryEntry(t *testing.T) {
	w, _ := newWizard()
	_, err := w.SubmitPersonalInfo(validPersonal())
	require.NoError(t, err)

	_, err = w.Next()
	var ve model.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"education.degree", "education.institution"}, ve.Fields())
	assert.Equal(t, StepEducation, w.Current())

	step, err := w.SubmitEducation(model.Education{Degree: "B.Tech", Institution: "X College"})
	require.NoError(t, err)
	assert.Equal(t, StepSkills, step)
}

func TestNext_LaterStepsAlwaysPass(t *testing.T) {
	w, _ := newWizard()
	_, err := w.SubmitPersonalInfo(validPersonal())
	require.NoError(t, err)
	_, err = w.SubmitEducation(model.Education{Degree: "BSc", Institution: "Uni"})
	require.NoError(t, err)

	for _, want := range []Step{StepProjects, StepSummary} {
		got, err := w.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = w.Next()
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StepSummary, te.From)
}

func TestBack(t *testing.T) {
	w, _ := newWizard()
	_, err := w.Back()
	var te *TransitionError
	require.ErrorAs(t, err, &te)

	_, err = w.SubmitPersonalInfo(validPersonal())
	require.NoError(t, err)

	// back never validates, even with the current step incomplete
	w.SetPersonalInfo(model.PersonalInfo{})
	step, err := w.Back()
	require.NoError(t, err)
	assert.Equal(t, StepPersonalInfo, step)
}

func TestComplete(t *testing.T) {
	w, _ := newWizard()
	_, err := w.Complete()
	require.Error(t, err)

	_, err = w.SubmitPersonalInfo(validPersonal())
	require.NoError(t, err)
	_, err = w.SubmitEducation(model.Education{Degree: "BSc", Institution: "Uni"})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = w.Next()
		require.NoError(t, err)
	}
	w.SetSummary("Engineer.")

	data, err := w.Complete()
	require.NoError(t, err)
	assert.Equal(t, "Engineer.", data.Summary)
	assert.True(t, w.Completed())

	_, err = w.Back()
	assert.Error(t, err)

	w.Restart()
	assert.False(t, w.Completed())
	assert.Equal(t, StepPersonalInfo, w.Current())
}

func TestProgress(t *testing.T) {
	w, _ := newWizard()
	assert.InDelta(t, 20.0, w.Progress(), 0.001)
	_, err := w.SubmitPersonalInfo(validPersonal())
	require.NoError(t, err)
	assert.InDelta(t, 40.0, w.Progress(), 0.001)
	assert.InDelta(t, 40.0, w.State().Progress, 0.001)
}

func TestAddSkill(t *testing.T) {
	w, store := newWizard()

	w.AddSkill("  ")
	assert.Empty(t, store.Current().Skills)

	w.AddSkill("SQL")
	skills := store.Current().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, model.Skill{Name: "SQL", Category: "technical"}, skills[0])

	w.AddSuggestedSkill(" Leadership ", "soft")
	assert.Equal(t, model.Skill{Name: "Leadership", Category: "soft"}, store.Current().Skills[1])
}

func TestRemoveSkill(t *testing.T) {
	w, store := newWizard()
	w.AddSkill("Go")
	w.AddSkill("SQL")
	w.AddSkill("Rust")

	_, err := w.RemoveSkill(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, store.Current().SkillNames())

	_, err = w.RemoveSkill(5)
	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 2, ie.Len)
}

func TestAddRemoveProject(t *testing.T) {
	w, store := newWizard()

	_, err := w.AddProject(ProjectInput{Title: " "})
	require.Error(t, err)

	_, err = w.AddProject(ProjectInput{Title: "Site", Technologies: "Go, ,HTMX ,"})
	require.NoError(t, err)
	_, err = w.AddProject(ProjectInput{Title: "CLI", Link: "not a url"})
	require.Error(t, err)

	projects := store.Current().Projects
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"Go", "HTMX"}, projects[0].Technologies)

	_, err = w.RemoveProject(0)
	require.NoError(t, err)
	assert.Empty(t, store.Current().Projects)
	_, err = w.RemoveProject(0)
	assert.Error(t, err)
}

func TestSelectRole(t *testing.T) {
	w, store := newWizard()
	_, err := w.SelectRole("astronaut")
	require.Error(t, err)

	_, err = w.SelectRole("developer")
	require.NoError(t, err)
	assert.Equal(t, "developer", store.Current().SelectedRole)
}

func TestStepContext_CancelledOnNavigation(t *testing.T) {
	w, _ := newWizard()
	ctx, cancel := w.StepContext(context.Background())
	defer cancel()

	w.SetPersonalInfo(validPersonal())
	_, err := w.Next()
	require.NoError(t, err)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("step context was not cancelled after leaving the step")
	}

	fresh, cancelFresh := w.StepContext(context.Background())
	defer cancelFresh()
	assert.NoError(t, fresh.Err())
}

func TestStepContext_SurvivesFailedTransition(t *testing.T) {
	w, _ := newWizard()
	ctx, cancel := w.StepContext(context.Background())
	defer cancel()

	_, err := w.Next()
	require.Error(t, err)
	assert.NoError(t, ctx.Err())
}

func TestSteps(t *testing.T) {
	all := Steps()
	require.Len(t, all, TotalSteps)
	assert.Equal(t, "Personal Info", all[0].Title)
	assert.Equal(t, "Professional summary", StepSummary.Info().Description)
	assert.Equal(t, "unknown", Step(9).String())
}
