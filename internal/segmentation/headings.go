package segmentation

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// maxHeadingLength is the length at or above which a line is never treated as
// a section heading. Body sentences that happen to contain a heading word
// ("...years of experience...") are usually longer than real headings.
const maxHeadingLength = 50

// headingRule pairs a canonical section with its anchored heading pattern.
type headingRule struct {
	section types.SectionName
	pattern *regexp.Regexp
}

// headingRules match canonical heading phrasings exactly, allowing an
// optional trailing colon. Order matters only for documentation; at most one
// rule can match a given line.
var headingRules = []headingRule{
	{types.SectionSummary, regexp.MustCompile(`(?i)^\s*(professional\s+)?(summary|objective|profile)\s*:?\s*$`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)^\s*((professional|work|relevant)\s+)?(experience|history|employment)\s*:?\s*$`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)^\s*education(al\s+background)?\s*:?\s*$`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)^\s*(certifications?|licenses?\s*(&|and)?\s*certifications?)\s*:?\s*$`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)^\s*((technical|core)\s+)?(skills?|competencies)\s*:?\s*$`)},
}

// fuzzyRules back up the anchored rules for non-canonical phrasings like
// "Professional Experience & Achievements" or "Relevant Coursework". A short
// line containing any keyword as a whole word qualifies as a heading for that
// section. Word boundaries keep "Experienced engineer." out.
var fuzzyRules = []headingRule{
	{types.SectionSummary, regexp.MustCompile(`(?i)\b(summary|objective|about me)\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\b(experience|work history|employment)\b`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)\b(education|coursework|academics?)\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\b(certifications?|certificates?|licenses?)\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\b(skills?|technologies|competencies)\b`)},
}

// detectHeading reports the canonical section a line opens, if any. A line
// only qualifies when its trimmed length is under maxHeadingLength.
func detectHeading(line string) (types.SectionName, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeadingLength {
		return "", false
	}
	// A line carrying a bullet marker is content, never a heading.
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "•") {
		return "", false
	}

	for _, rule := range headingRules {
		if rule.pattern.MatchString(trimmed) {
			return rule.section, true
		}
	}

	for _, rule := range fuzzyRules {
		if rule.pattern.MatchString(trimmed) {
			return rule.section, true
		}
	}

	return "", false
}
