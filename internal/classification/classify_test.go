package classification

import (
	"testing"

	"github.com/jonathan/resume-forge/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_BlankLineIsSpacer(t *testing.T) {
	line := Classify("   ", types.SectionExperience)
	assert.Equal(t, Spacer, line.Kind)
	assert.Empty(t, line.Text)
}

func TestClassify_BulletMarkers(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"dash", "- Led a team of 5"},
		{"asterisk", "* Led a team of 5"},
		{"dot", "• Led a team of 5"},
		{"dash no space", "-Led a team of 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Classify(tt.in, types.SectionExperience)
			assert.Equal(t, BulletItem, line.Kind)
			assert.Equal(t, "Led a team of 5", line.Text)
		})
	}
}

func TestClassify_SkillsAlwaysBullet(t *testing.T) {
	tests := []string{
		"Go, Python, Kubernetes",
		"- Go",
		"Team leadership",
	}
	for _, in := range tests {
		line := Classify(in, types.SectionSkills)
		assert.Equal(t, BulletItem, line.Kind, "skills line %q must be a bullet", in)
	}
}

func TestClassify_SkillsStripsExistingMarker(t *testing.T) {
	line := Classify("- Go", types.SectionSkills)
	assert.Equal(t, "Go", line.Text)
}

func TestClassify_SubHeadingWithYear(t *testing.T) {
	line := Classify("Acme Corp | Senior Engineer | 2020-Present", types.SectionExperience)
	assert.Equal(t, SubHeading, line.Kind)
	assert.Equal(t, "Acme Corp | Senior Engineer | 2020-Present", line.Text)
}

func TestClassify_SubHeadingWithPresent(t *testing.T) {
	line := Classify("Beta Inc, Staff Engineer, present", types.SectionExperience)
	assert.Equal(t, SubHeading, line.Kind)
}

func TestClassify_SubHeadingSeparatorPattern(t *testing.T) {
	tests := []string{
		"Acme Corp | Senior Engineer",
		"Acme – Engineer",
		"Acme - Engineer",
		"Acme Corp  Engineer",
	}
	for _, in := range tests {
		line := Classify(in, types.SectionExperience)
		assert.Equal(t, SubHeading, line.Kind, "line %q should be a sub-heading", in)
	}
}

func TestClassify_ProseLines(t *testing.T) {
	tests := []string{
		"Experienced engineer.",
		"Built resilient backend services with a focus on reliability.",
		"lowercase start with 2021 in the middle",
	}
	for _, in := range tests {
		line := Classify(in, types.SectionSummary)
		assert.Equal(t, Prose, line.Kind, "line %q should be prose", in)
	}
}

func TestClassify_EducationSubHeading(t *testing.T) {
	line := Classify("MIT, BS Computer Science, 2016", types.SectionEducation)
	assert.Equal(t, SubHeading, line.Kind)
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("- Led a team of 5", types.SectionExperience)
	second := Classify("- Led a team of 5", types.SectionExperience)
	assert.Equal(t, first, second)
}

func TestClassify_SkillsForcingIsOnlyDifference(t *testing.T) {
	// A prose-shaped line differs between skills and other sections only by
	// the forced-bullet rule.
	in := "Team leadership"
	assert.Equal(t, Prose, Classify(in, types.SectionSummary).Kind)
	assert.Equal(t, BulletItem, Classify(in, types.SectionSkills).Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bullet", BulletItem.String())
	assert.Equal(t, "subheading", SubHeading.String())
	assert.Equal(t, "prose", Prose.String())
	assert.Equal(t, "spacer", Spacer.String())
}
