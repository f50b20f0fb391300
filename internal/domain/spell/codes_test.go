package spell_test

import (
	"testing"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "A", want: "Abjuration"},
		{code: "C", want: "Conjuration"},
		{code: "D", want: "Divination"},
		{code: "E", want: "Enchantment"},
		{code: "I", want: "Illusion"},
		{code: "N", want: "Necromancy"},
		{code: "T", want: "Transmutation"},
		{code: "V", want: "Evocation"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := spell.SchoolName(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchoolName_Unknown(t *testing.T) {
	_, err := spell.SchoolName("X")
	assert.ErrorIs(t, err, spell.ErrUnknownCode)
}

func TestAreaTagName(t *testing.T) {
	got, err := spell.AreaTagName("ST")
	require.NoError(t, err)
	assert.Equal(t, "single target", got)

	got, err = spell.AreaTagName("N")
	require.NoError(t, err)
	assert.Equal(t, "cone", got)

	_, err = spell.AreaTagName("ZZ")
	assert.ErrorIs(t, err, spell.ErrUnknownCode)
}

func TestMiscTagName(t *testing.T) {
	got, err := spell.MiscTagName("SGT")
	require.NoError(t, err)
	assert.Equal(t, "requires sight", got)

	got, err = spell.MiscTagName("THP")
	require.NoError(t, err)
	assert.Equal(t, "grants temporary hit points", got)

	_, err = spell.MiscTagName("NOPE")
	assert.ErrorIs(t, err, spell.ErrUnknownCode)
}
