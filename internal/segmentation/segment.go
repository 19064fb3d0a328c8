// Package segmentation splits raw resume text into an ordered header block
// plus named content sections using heading-detection heuristics.
package segmentation

import (
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// Segment splits raw resume text into a SegmentedResume. It is a total
// function: any string input, including empty or unstructured text, yields a
// valid result. Text with no detectable headings lands entirely in the header
// block.
//
// Lines before the first heading accumulate into Header, dropping blanks
// (they carry no layout meaning there). A heading line switches the current
// section and is itself never emitted. Every later line, blanks included, is
// appended verbatim to the open section; blank lines become "" spacer
// entries. A heading that repeats a section name reopens that section and
// appends to it.
func Segment(text string) types.SegmentedResume {
	result := types.NewSegmentedResume()
	if text == "" {
		return result
	}

	var current types.SectionName
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		if section, ok := detectHeading(line); ok {
			current = section
			inSection = true
			continue
		}

		if !inSection {
			if strings.TrimSpace(line) != "" {
				result.Header = append(result.Header, line)
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			result.Sections[current] = append(result.Sections[current], "")
			continue
		}
		result.Sections[current] = append(result.Sections[current], line)
	}

	return result
}
