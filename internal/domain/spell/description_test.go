package spell_test

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []json.RawMessage
		want    []spell.Description
	}{
		{
			name: "mixed entries keep source order",
			entries: []json.RawMessage{
				json.RawMessage(`"Intro text."`),
				json.RawMessage(`{"type":"list","items":["a","b"]}`),
				json.RawMessage(`{"type":"quote","entries":["Q1"],"by":"Sage"}`),
			},
			want: []spell.Description{
				spell.PlainText{Text: "Intro text."},
				spell.BulletList{Items: []string{"a", "b"}},
				spell.Quote{Paragraphs: []string{"Q1"}, By: "Sage"},
			},
		},
		{
			name: "subsection keeps paragraphs as raw strings",
			entries: []json.RawMessage{
				json.RawMessage(`{"type":"entries","name":"At Higher Levels","entries":["More dice.","Even more dice."]}`),
			},
			want: []spell.Description{
				spell.Subsection{
					Name:       "At Higher Levels",
					Paragraphs: []string{"More dice.", "Even more dice."},
				},
			},
		},
		{
			name: "table with caption",
			entries: []json.RawMessage{
				json.RawMessage(`{"type":"table","caption":"Teleportation Outcome","colLabels":["d100","Outcome"],"rows":[["01-24","Mishap"],["25-100","On target"]]}`),
			},
			want: []spell.Description{
				spell.Table{
					Caption:   "Teleportation Outcome",
					ColLabels: []string{"d100", "Outcome"},
					Rows: [][]string{
						{"01-24", "Mishap"},
						{"25-100", "On target"},
					},
				},
			},
		},
		{
			name: "table without caption",
			entries: []json.RawMessage{
				json.RawMessage(`{"type":"table","colLabels":["d8","Effect"],"rows":[["1","Nothing"]]}`),
			},
			want: []spell.Description{
				spell.Table{
					ColLabels: []string{"d8", "Effect"},
					Rows:      [][]string{{"1", "Nothing"}},
				},
			},
		},
		{
			name: "unknown tag dropped without error",
			entries: []json.RawMessage{
				json.RawMessage(`"Before."`),
				json.RawMessage(`{"type":"image","href":"fireball.png"}`),
				json.RawMessage(`"After."`),
			},
			want: []spell.Description{
				spell.PlainText{Text: "Before."},
				spell.PlainText{Text: "After."},
			},
		},
		{
			name:    "no entries",
			entries: nil,
			want:    []spell.Description{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := spell.ClassifyEntries(tt.entries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyEntries_MalformedEntry(t *testing.T) {
	tests := []struct {
		name    string
		entries []json.RawMessage
	}{
		{
			name:    "list items not strings",
			entries: []json.RawMessage{json.RawMessage(`{"type":"list","items":[1,2]}`)},
		},
		{
			name:    "truncated object",
			entries: []json.RawMessage{json.RawMessage(`{"type":`)},
		},
		{
			name:    "empty entry",
			entries: []json.RawMessage{json.RawMessage(``)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spell.ClassifyEntries(tt.entries)
			assert.Error(t, err)
		})
	}
}

func TestDescription_EntryTypes(t *testing.T) {
	assert.Equal(t, spell.EntryText, spell.PlainText{}.EntryType())
	assert.Equal(t, spell.EntryList, spell.BulletList{}.EntryType())
	assert.Equal(t, spell.EntryQuote, spell.Quote{}.EntryType())
	assert.Equal(t, spell.EntrySubsection, spell.Subsection{}.EntryType())
	assert.Equal(t, spell.EntryTable, spell.Table{}.EntryType())
}
