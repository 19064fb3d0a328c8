// Package extraction pulls contact fields out of raw resume text using pattern matching.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// maxNameLength is the length above which a first line is assumed to be body
// prose rather than a name banner.
const maxNameLength = 50

var (
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern   = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	profilePattern = regexp.MustCompile(`(?i)\b[a-z0-9.-]+\.[a-z]{2,}/in/[A-Za-z0-9_-]+`)
)

// ExtractContact derives a ContactInfo from raw resume text. It is a total
// function: no match for a field leaves that field empty, and no input causes
// an error.
func ExtractContact(text string) types.ContactInfo {
	contact := types.ContactInfo{
		Email:   emailPattern.FindString(text),
		Phone:   phonePattern.FindString(text),
		Profile: profilePattern.FindString(text),
	}
	contact.Name = extractName(text)
	return contact
}

// extractName returns the first non-empty line when it looks like a name
// banner: short, and free of the '@' and ':' punctuation that marks contact
// rows and body prose.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(trimmed) >= maxNameLength {
			return ""
		}
		if strings.ContainsAny(trimmed, "@:") {
			return ""
		}
		return trimmed
	}
	return ""
}
