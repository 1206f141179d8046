package wizard

import (
	"fmt"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValid_AllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		hasName := mask&1 != 0
		hasEmail := mask&2 != 0
		hasExp := mask&4 != 0
		hasEdu := mask&8 != 0

		t.Run(fmt.Sprintf("name=%t email=%t exp=%t edu=%t", hasName, hasEmail, hasExp, hasEdu), func(t *testing.T) {
			var doc types.ResumeDocument
			if hasName {
				doc.PersonalInfo.FullName = "Ada"
			}
			if hasEmail {
				doc.PersonalInfo.Email = "ada@example.com"
			}
			if hasExp {
				doc.Experience = []types.ExperienceEntry{{ID: "e"}}
			}
			if hasEdu {
				doc.Education = []types.EducationEntry{{ID: "d"}}
			}

			assert.Equal(t, hasName && hasEmail && hasExp && hasEdu, FormValid(doc))
		})
	}
}

func TestFormValid_IgnoresSkillsAndSummary(t *testing.T) {
	doc := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{FullName: "Ada", Email: "ada@example.com"},
		Experience:   []types.ExperienceEntry{{ID: "e"}},
		Education:    []types.EducationEntry{{ID: "d"}},
	}
	assert.True(t, FormValid(doc))
}

func TestNormalizeStep(t *testing.T) {
	tests := []struct {
		in   int
		want Step
	}{
		{-1, StepWelcome},
		{0, StepWelcome},
		{1, StepTemplateSelect},
		{2, StepDetailsForm},
		{3, StepPreview},
		{4, StepWelcome},
		{99, StepWelcome},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStep(tt.in), "input %d", tt.in)
	}
}

func TestTransitions_HappyPath(t *testing.T) {
	s := NewStore()

	require.True(t, s.Start())
	assert.Equal(t, StepTemplateSelect, s.State().CurrentStep)

	assert.False(t, s.ContinueToDetails(), "no template selected yet")
	assert.Equal(t, StepTemplateSelect, s.State().CurrentStep)

	require.True(t, s.SelectTemplate("modern-minimal"))
	require.True(t, s.ContinueToDetails())
	assert.Equal(t, StepDetailsForm, s.State().CurrentStep)

	assert.False(t, s.ContinueToPreview(), "form is empty")
	fillValid(s)
	require.True(t, s.ContinueToPreview())
	assert.Equal(t, StepPreview, s.State().CurrentStep)

	require.True(t, s.Edit())
	assert.Equal(t, StepDetailsForm, s.State().CurrentStep)

	require.True(t, s.BackToTemplates())
	assert.Equal(t, StepTemplateSelect, s.State().CurrentStep)
	require.True(t, s.BackToWelcome())
	assert.Equal(t, StepWelcome, s.State().CurrentStep)
}

func TestTransitions_WrongSourceStepRefused(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Edit())
	assert.False(t, s.BackToTemplates())
	assert.False(t, s.ContinueToPreview())
	assert.False(t, s.StartOver())
	assert.Equal(t, StepWelcome, s.State().CurrentStep)

	require.True(t, s.Start())
	assert.False(t, s.Start(), "already past welcome")
	assert.Equal(t, StepTemplateSelect, s.State().CurrentStep)
}

func TestStartOver_ResetsFromPreview(t *testing.T) {
	s := NewStore()
	fillValid(s)
	require.True(t, s.SelectTemplate("traditional-formal"))
	require.True(t, s.Start())
	require.True(t, s.ContinueToDetails())
	require.True(t, s.ContinueToPreview())

	require.True(t, s.StartOver())

	assert.Equal(t, State{CurrentStep: StepWelcome}, s.State())
	assert.Equal(t, types.ResumeDocument{}, s.Document())
	assert.True(t, s.Start(), "wizard is re-enterable")
}

func TestCanContinue(t *testing.T) {
	s := NewStore()
	assert.False(t, s.CanContinueToDetails())
	assert.False(t, s.CanContinueToPreview())

	s.SelectTemplate("classic-professional")
	fillValid(s)
	assert.True(t, s.CanContinueToDetails())
	assert.True(t, s.CanContinueToPreview())
}

func TestProgress(t *testing.T) {
	assert.Nil(t, Progress(StepWelcome))
	assert.Nil(t, Progress(Step(42)))

	items := Progress(StepDetailsForm)
	require.Len(t, items, 4)
	assert.Equal(t, StatusDone, items[0].Status)
	assert.Equal(t, StatusDone, items[1].Status)
	assert.Equal(t, StatusCurrent, items[2].Status)
	assert.Equal(t, StatusPending, items[3].Status)
	assert.Equal(t, "Details", items[2].Name)
}
