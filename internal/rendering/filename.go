package rendering

import "strings"

// fallbackBase is used when the contact name yields no usable tokens.
const fallbackBase = "Resume"

// DeriveFilename derives the download filename for a rendered document from
// the contact name. Non-alphabetic, non-space characters are stripped, the
// first token becomes the first name, and any remaining tokens join with
// underscores: "John Public" -> "John_Public_Resume.pdf". Every export path
// shares this one function.
func DeriveFilename(name, ext string) string {
	var cleaned strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' {
			cleaned.WriteRune(r)
		}
	}

	tokens := strings.Fields(cleaned.String())
	switch len(tokens) {
	case 0:
		return fallbackBase + "." + ext
	case 1:
		return tokens[0] + "_" + fallbackBase + "." + ext
	default:
		return tokens[0] + "_" + strings.Join(tokens[1:], "_") + "_" + fallbackBase + "." + ext
	}
}
