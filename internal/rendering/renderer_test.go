package rendering

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() types.ResumeDocument {
	return types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "555-0100",
			Location: "London",
			LinkedIn: "https://linkedin.com/in/ada",
		},
		Summary: "Mathematician and writer.",
		Experience: []types.ExperienceEntry{
			{ID: "e1", JobTitle: "Analyst", Company: "Analytical Engines", Location: "London", StartDate: "1842-01", EndDate: "1843-09", Current: true, Description: "Wrote the first program."},
			{ID: "e2", JobTitle: "Translator", Company: "Taylor's Memoirs", StartDate: "1840-05", EndDate: "1841-02"},
		},
		Education: []types.EducationEntry{
			{ID: "d1", Degree: "Private tutoring", School: "Home", GraduationDate: "1835-06", GPA: "4.0"},
		},
		Skills: []types.SkillEntry{
			{ID: "s1", Name: "Mathematics", Level: types.LevelExpert},
			{ID: "s2", Name: "Poetry", Level: types.LevelBeginner},
		},
	}
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFor_Dispatch(t *testing.T) {
	tests := []struct {
		category types.Category
		want     types.Category
	}{
		{types.CategoryClassic, types.CategoryClassic},
		{types.CategoryModern, types.CategoryModern},
		{types.CategoryTraditional, types.CategoryTraditional},
		{types.CategoryCreative, types.CategoryCreative},
		{types.Category("unknown"), types.CategoryClassic},
		{types.Category(""), types.CategoryClassic},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.category).Category())
		})
	}
}

func TestForTemplate(t *testing.T) {
	assert.Equal(t, types.CategoryClassic, ForTemplate(nil).Category())
	assert.Equal(t, types.CategoryModern, ForTemplate(&types.TemplateDescriptor{Category: types.CategoryModern}).Category())
	assert.Equal(t, types.CategoryClassic, ForTemplate(&types.TemplateDescriptor{Category: "unknown"}).Category())
}

func TestRender_EveryLayoutHasContentRoot(t *testing.T) {
	for _, c := range []types.Category{types.CategoryClassic, types.CategoryModern, types.CategoryTraditional, types.CategoryCreative} {
		t.Run(string(c), func(t *testing.T) {
			out, err := For(c).Render(sampleDocument())
			require.NoError(t, err)

			doc := parse(t, string(out))
			root := doc.Find(ContentSelector)
			require.Equal(t, 1, root.Length())
			assert.True(t, root.HasClass("resume-"+string(c)))
			assert.Contains(t, root.Find(".name").Text(), "Ada Lovelace")
			assert.Equal(t, 2, root.Find(".section-experience .entry").Length())
			assert.Equal(t, 1, root.Find(".section-education .entry").Length())
			assert.Equal(t, 2, root.Find(".section-skills .skill").Length())
			assert.Equal(t, 1, root.Find(".section-summary").Length())
		})
	}
}

func TestRender_SuppressesEmptySections(t *testing.T) {
	empty := types.ResumeDocument{PersonalInfo: types.PersonalInfo{FullName: "Nobody"}}

	for _, c := range []types.Category{types.CategoryClassic, types.CategoryModern, types.CategoryTraditional, types.CategoryCreative} {
		t.Run(string(c), func(t *testing.T) {
			out, err := For(c).Render(empty)
			require.NoError(t, err)

			doc := parse(t, string(out))
			for _, sel := range []string{".section-summary", ".section-experience", ".section-education", ".section-skills", ".contact", "img.photo", "h2"} {
				assert.Equal(t, 0, doc.Find(sel).Length(), "expected %s to be omitted", sel)
			}
		})
	}
}

func TestRender_CurrentShowsPresent(t *testing.T) {
	for _, c := range []types.Category{types.CategoryClassic, types.CategoryModern, types.CategoryTraditional, types.CategoryCreative} {
		out, err := For(c).Render(sampleDocument())
		require.NoError(t, err)

		dates := parse(t, string(out)).Find(".section-experience .entry").First().Find(".dates").Text()
		assert.Contains(t, dates, "Present", string(c))
		assert.NotContains(t, dates, "1843", string(c))
	}
}

func TestRender_DateStylePerLayout(t *testing.T) {
	classicOut, err := For(types.CategoryClassic).Render(sampleDocument())
	require.NoError(t, err)
	assert.Contains(t, string(classicOut), "May 1840 - February 1841")

	modernOut, err := For(types.CategoryModern).Render(sampleDocument())
	require.NoError(t, err)
	assert.Contains(t, string(modernOut), "May 1840 - Feb 1841")
}

func TestRender_ModernSkillBars(t *testing.T) {
	out, err := For(types.CategoryModern).Render(sampleDocument())
	require.NoError(t, err)

	bars := parse(t, string(out)).Find(".skill-bar")
	require.Equal(t, 2, bars.Length())
	style0, _ := bars.Eq(0).Attr("style")
	style1, _ := bars.Eq(1).Attr("style")
	assert.Contains(t, style0, "100%")
	assert.Contains(t, style1, "25%")
}

func TestRender_CreativeStarsAndInitials(t *testing.T) {
	out, err := For(types.CategoryCreative).Render(sampleDocument())
	require.NoError(t, err)

	doc := parse(t, string(out))
	skills := doc.Find(".section-skills .skill")
	assert.Equal(t, 4, skills.Eq(0).Find(".star.filled").Length())
	assert.Equal(t, 1, skills.Eq(1).Find(".star.filled").Length())
	assert.Equal(t, 4, skills.Eq(1).Find(".star").Length())
	assert.Equal(t, "AL", doc.Find(".initials").Text())
}

func TestRender_TraditionalDots(t *testing.T) {
	doc := sampleDocument()
	doc.Skills = append(doc.Skills, types.SkillEntry{ID: "s3", Name: "Chess", Level: "Grandmaster"})

	out, err := For(types.CategoryTraditional).Render(doc)
	require.NoError(t, err)

	skills := parse(t, string(out)).Find(".section-skills .skill")
	assert.Equal(t, 4, skills.Eq(0).Find(".dot.filled").Length())
	assert.Equal(t, 1, skills.Eq(1).Find(".dot.filled").Length())
	assert.Equal(t, 2, skills.Eq(2).Find(".dot.filled").Length(), "unknown level uses the middle rank")
}

func TestRender_ProfileImage(t *testing.T) {
	doc := sampleDocument()
	doc.PersonalInfo.ProfileImage = "data:image/png;base64,iVBORw0KGgo="

	out, err := For(types.CategoryCreative).Render(doc)
	require.NoError(t, err)

	page := parse(t, string(out))
	src, ok := page.Find("img.photo").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", src)
	assert.Equal(t, 0, page.Find(".initials").Length())

	doc.PersonalInfo.ProfileImage = "javascript:alert(1)"
	out, err = For(types.CategoryClassic).Render(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, parse(t, string(out)).Find("img.photo").Length())
}

func TestRender_EscapesUserText(t *testing.T) {
	doc := sampleDocument()
	doc.Summary = "<script>alert('x')</script>"

	out, err := For(types.CategoryClassic).Render(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Equal(t, doc.Summary, parse(t, string(out)).Find(".section-summary p").Text())
}

func TestRender_IsPure(t *testing.T) {
	doc := sampleDocument()
	before := doc.Clone()

	first, err := For(types.CategoryModern).Render(doc)
	require.NoError(t, err)
	second, err := For(types.CategoryModern).Render(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, doc)
}

func TestPage(t *testing.T) {
	tmpl := &types.TemplateDescriptor{ID: "modern-tech", Category: types.CategoryModern}

	html, err := Page(sampleDocument(), tmpl)
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, "Ada Lovelace - Resume", doc.Find("title").Text())
	assert.Contains(t, doc.Find("style").Text(), "@media print")
	assert.True(t, doc.Find(ContentSelector).HasClass("resume-modern"))
}

func TestPage_NoTemplateUsesClassic(t *testing.T) {
	html, err := Page(types.ResumeDocument{}, nil)
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, "Resume", doc.Find("title").Text())
	assert.True(t, doc.Find(ContentSelector).HasClass("resume-classic"))
}

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("boom")

	terr := &TemplateError{Layout: "modern", Message: "failed", Cause: cause}
	assert.Equal(t, "template error (modern): failed: boom", terr.Error())
	assert.ErrorIs(t, terr, cause)

	rerr := &RenderError{Message: "failed"}
	assert.Equal(t, "render error: failed", rerr.Error())
	assert.Nil(t, rerr.Unwrap())
}
