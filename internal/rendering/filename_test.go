package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFilename_FirstAndLast(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume.pdf", DeriveFilename("Jane Doe", "pdf"))
}

func TestDeriveFilename_MultipleLastTokens(t *testing.T) {
	assert.Equal(t, "John_Q_Public_Resume.pdf", DeriveFilename("John Q. Public", "pdf"))
}

func TestDeriveFilename_StripsDigitsAndPunctuation(t *testing.T) {
	assert.Equal(t, "John_Public_Resume.pdf", DeriveFilename("John 3000 Public!!", "pdf"))
}

func TestDeriveFilename_SingleToken(t *testing.T) {
	assert.Equal(t, "Cher_Resume.docx", DeriveFilename("Cher", "docx"))
}

func TestDeriveFilename_EmptyName(t *testing.T) {
	assert.Equal(t, "Resume.txt", DeriveFilename("", "txt"))
}

func TestDeriveFilename_OnlyStrippableCharacters(t *testing.T) {
	assert.Equal(t, "Resume.pdf", DeriveFilename("12345 !!!", "pdf"))
}

func TestDeriveFilename_Deterministic(t *testing.T) {
	assert.Equal(t, DeriveFilename("Jane Doe", "pdf"), DeriveFilename("Jane Doe", "pdf"))
}
