package templates

import (
	"testing"

	"github.com/jonathan/resume-forge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_StableOrder(t *testing.T) {
	first := List()
	second := List()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	tampered := List()
	tampered[0].DisplayName = "Tampered"

	fresh := List()
	assert.NotEqual(t, "Tampered", fresh[0].DisplayName)
}

func TestList_CoversAllLayoutKinds(t *testing.T) {
	seen := map[types.LayoutKind]bool{}
	for _, tmpl := range List() {
		seen[tmpl.Layout] = true
	}
	assert.True(t, seen[types.LayoutSingleColumn])
	assert.True(t, seen[types.LayoutHeaderBand])
	assert.True(t, seen[types.LayoutSidebarLeft])
	assert.True(t, seen[types.LayoutSidebarRight])
}

func TestResolve_KnownTemplate(t *testing.T) {
	tmpl, err := Resolve("classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", tmpl.ID)
	assert.Equal(t, types.LayoutSingleColumn, tmpl.Layout)
}

func TestResolve_UnknownTemplate(t *testing.T) {
	_, err := Resolve("brutalist")
	require.Error(t, err)

	var unknownErr *UnknownTemplateError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "brutalist", unknownErr.ID)
}

func TestResolveColorScheme(t *testing.T) {
	scheme, ok := ResolveColorScheme("slate")
	assert.True(t, ok)
	assert.Equal(t, "slate", scheme.ID)

	_, ok = ResolveColorScheme("neon")
	assert.False(t, ok)
}
