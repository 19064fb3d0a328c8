package segmentation

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-forge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com | (555) 123-4567
SUMMARY
Experienced engineer.
EXPERIENCE
Acme Corp | Senior Engineer | 2020-Present
- Led a team of 5
EDUCATION
MIT, BS Computer Science, 2016
`

func TestSegment_SampleResume(t *testing.T) {
	seg := Segment(sampleResume)

	assert.Equal(t, []string{"Jane Doe", "jane@example.com | (555) 123-4567"}, seg.Header)
	assert.Equal(t, []string{"Experienced engineer."}, seg.Section(types.SectionSummary))
	assert.Equal(t, []string{
		"Acme Corp | Senior Engineer | 2020-Present",
		"- Led a team of 5",
	}, seg.Section(types.SectionExperience))
	assert.Equal(t, []string{"MIT, BS Computer Science, 2016"}, seg.Section(types.SectionEducation))
	assert.Empty(t, seg.Section(types.SectionCertifications))
	assert.Empty(t, seg.Section(types.SectionSkills))
}

func TestSegment_EmptyInput(t *testing.T) {
	seg := Segment("")
	assert.Empty(t, seg.Header)
	for _, name := range types.SectionOrder {
		assert.Empty(t, seg.Section(name), "section %s should be empty", name)
	}
	assert.True(t, seg.IsEmpty())
}

func TestSegment_NoHeadings(t *testing.T) {
	seg := Segment("line one\n\nline two\nline three")
	assert.Equal(t, []string{"line one", "line two", "line three"}, seg.Header)
	for _, name := range types.SectionOrder {
		assert.Empty(t, seg.Section(name))
	}
}

func TestSegment_HeadingLinesNeverEmitted(t *testing.T) {
	seg := Segment("SUMMARY\nsome text\nSKILLS\nGo")

	all := strings.Join(seg.Header, "\n")
	for _, name := range types.SectionOrder {
		all += "\n" + strings.Join(seg.Section(name), "\n")
	}
	assert.NotContains(t, all, "SUMMARY")
	assert.NotContains(t, all, "SKILLS")
}

func TestSegment_ConsecutiveHeadings(t *testing.T) {
	seg := Segment("SUMMARY\nEXPERIENCE\nAcme Corp")
	assert.Empty(t, seg.Section(types.SectionSummary))
	assert.Equal(t, []string{"Acme Corp"}, seg.Section(types.SectionExperience))
}

func TestSegment_BlankLinesPreservedInsideSections(t *testing.T) {
	seg := Segment("EXPERIENCE\nAcme Corp\n\nBeta Inc")
	assert.Equal(t, []string{"Acme Corp", "", "Beta Inc"}, seg.Section(types.SectionExperience))
}

func TestSegment_BlankLinesDroppedFromHeader(t *testing.T) {
	seg := Segment("\nJane Doe\n\njane@example.com\nSUMMARY\ntext")
	assert.Equal(t, []string{"Jane Doe", "jane@example.com"}, seg.Header)
}

func TestSegment_FuzzyHeadings(t *testing.T) {
	tests := []struct {
		heading string
		section types.SectionName
	}{
		{"Professional Experience", types.SectionExperience},
		{"Work History", types.SectionExperience},
		{"Relevant Coursework", types.SectionEducation},
		{"Technical Skills", types.SectionSkills},
		{"Licenses & Certifications", types.SectionCertifications},
		{"Career Objective", types.SectionSummary},
	}
	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			seg := Segment(tt.heading + "\ncontent line")
			assert.Equal(t, []string{"content line"}, seg.Section(tt.section))
		})
	}
}

func TestSegment_LongLineWithHeadingWordIsContent(t *testing.T) {
	long := "I have over ten years of experience building resilient backend services in Go"
	require.GreaterOrEqual(t, len(long), 50)

	seg := Segment("SUMMARY\n" + long)
	assert.Equal(t, []string{long}, seg.Section(types.SectionSummary))
}

func TestSegment_SentenceContainingExperiencedIsContent(t *testing.T) {
	seg := Segment("SUMMARY\nExperienced engineer.")
	assert.Equal(t, []string{"Experienced engineer."}, seg.Section(types.SectionSummary))
}

func TestSegment_UnknownHeadingFoldsIntoOpenSection(t *testing.T) {
	seg := Segment("SUMMARY\ntext\nHOBBIES\nchess")
	assert.Equal(t, []string{"text", "HOBBIES", "chess"}, seg.Section(types.SectionSummary))
}

func TestSegment_UnknownHeadingBeforeAnySectionGoesToHeader(t *testing.T) {
	seg := Segment("HOBBIES\nchess")
	assert.Equal(t, []string{"HOBBIES", "chess"}, seg.Header)
}

func TestSegment_EveryNonBlankLineAssignedExactlyOnce(t *testing.T) {
	seg := Segment(sampleResume)

	assigned := 0
	assigned += len(seg.Header)
	for _, name := range types.SectionOrder {
		for _, line := range seg.Section(name) {
			if line != "" {
				assigned++
			}
		}
	}

	nonBlank := 0
	headings := 0
	for _, line := range strings.Split(sampleResume, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonBlank++
		if _, ok := detectHeading(line); ok {
			headings++
		}
	}
	assert.Equal(t, nonBlank-headings, assigned)
}

func TestSegment_HeadingWithTrailingColon(t *testing.T) {
	seg := Segment("Skills:\nGo, Python")
	assert.Equal(t, []string{"Go, Python"}, seg.Section(types.SectionSkills))
}

func TestSegment_BulletLineIsNeverAHeading(t *testing.T) {
	seg := Segment("EXPERIENCE\n- Ran skills workshops")
	assert.Equal(t, []string{"- Ran skills workshops"}, seg.Section(types.SectionExperience))
}
