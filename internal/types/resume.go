// Package types provides type definitions for structured data used throughout the resume-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionName identifies one of the canonical resume sections.
type SectionName string

// Canonical section names. Display order is fixed by SectionOrder.
const (
	SectionSummary        SectionName = "summary"
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionCertifications SectionName = "certifications"
	SectionSkills         SectionName = "skills"
)

// SectionOrder is the canonical display order for rendered output.
// Renderers iterate this slice, never the section map directly.
var SectionOrder = []SectionName{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionCertifications,
	SectionSkills,
}

// ContactInfo holds contact fields extracted from raw resume text.
// Absent fields are empty strings, never fabricated.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Profile  string `json:"profile,omitempty"` // professional-network handle, e.g. linkedin.com/in/jane
	Location string `json:"location,omitempty"`
}

// IsEmpty reports whether no contact field was extracted.
func (c ContactInfo) IsEmpty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == "" && c.Profile == "" && c.Location == ""
}

// SegmentedResume is the result of splitting raw resume text into an ordered
// header block plus named content sections.
//
// Invariants maintained by segmentation.Segment:
//   - every non-blank input line lands in exactly one of Header or Sections
//     (heading lines excluded by design)
//   - heading lines are never copied into section content
//   - blank lines inside a section are preserved as "" entries so renderers
//     can emit vertical spacing
type SegmentedResume struct {
	Header   []string                 `json:"header"`
	Sections map[SectionName][]string `json:"sections"`
}

// NewSegmentedResume returns an empty SegmentedResume with every canonical
// section present (possibly empty), so callers never need nil checks.
func NewSegmentedResume() SegmentedResume {
	sections := make(map[SectionName][]string, len(SectionOrder))
	for _, name := range SectionOrder {
		sections[name] = []string{}
	}
	return SegmentedResume{
		Header:   []string{},
		Sections: sections,
	}
}

// Section returns the content lines for a canonical section.
func (s SegmentedResume) Section(name SectionName) []string {
	return s.Sections[name]
}

// HasContent reports whether the section has at least one line.
func (s SegmentedResume) HasContent(name SectionName) bool {
	return len(s.Sections[name]) > 0
}

// IsEmpty reports whether neither header nor any section holds content.
func (s SegmentedResume) IsEmpty() bool {
	if len(s.Header) > 0 {
		return false
	}
	for _, name := range SectionOrder {
		if len(s.Sections[name]) > 0 {
			return false
		}
	}
	return true
}
