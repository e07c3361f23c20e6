package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_IsCaseInsensitive(t *testing.T) {
	tpl, ok := Lookup("lighting")
	require.True(t, ok)
	assert.Equal(t, "Lighting", tpl.Name)
	assert.NotEmpty(t, tpl.Subcategories)
}

func TestLookup_UnknownCategory(t *testing.T) {
	_, ok := Lookup("Plumbing")
	assert.False(t, ok)
}

func TestAvailable_MatchesTemplates(t *testing.T) {
	names := Available()
	require.Len(t, names, len(All()))
	for i, tpl := range All() {
		assert.Equal(t, tpl.Name, names[i])
	}
}
