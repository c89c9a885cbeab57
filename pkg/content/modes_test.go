package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	for _, bad := range []string{"", "Research", "ABA", "marketing"} {
		_, err := ParseMode(bad)
		assert.Error(t, err, "mode %q", bad)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("skill")
	assert.Error(t, err)
}

func TestModeSet(t *testing.T) {
	set := NewModeSet(ModeJournalism, ModeResearch, ModeJournalism)
	assert.Equal(t, ModeSet{ModeResearch, ModeJournalism}, set)
	assert.True(t, set.Declared())
	assert.True(t, set.Contains(ModeJournalism))
	assert.False(t, set.Contains(ModeABA))
	assert.Equal(t, "research,journalism", set.String())

	var undeclared ModeSet
	assert.False(t, undeclared.Declared())
	assert.Equal(t, ModeSet{ModeABA}, undeclared.Union(ModeSet{ModeABA}))
	assert.True(t, NewModeSet().Declared(), "an explicitly built set is declared even when empty")
}
