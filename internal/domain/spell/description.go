package spell

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EntryType identifies the concrete shape of a Description. The values
// match the "type" tags used in 5e.tools spell data, except EntryText which
// marks the untagged plain-string case.
type EntryType string

const (
	EntryText       EntryType = "text"
	EntryList       EntryType = "list"
	EntryQuote      EntryType = "quote"
	EntrySubsection EntryType = "entries"
	EntryTable      EntryType = "table"
)

// Description is one entry of a spell's descriptive text. Entries keep the
// order they had in the source data, which is rendering order.
type Description interface {
	EntryType() EntryType
}

// PlainText is a simple paragraph.
type PlainText struct {
	Text string `json:"text"`
}

// EntryType returns EntryText
func (PlainText) EntryType() EntryType { return EntryText }

// BulletList is a sequence of items rendered as bullet points.
type BulletList struct {
	Items []string `json:"items"`
}

// EntryType returns EntryList
func (BulletList) EntryType() EntryType { return EntryList }

// Quote is quoted flavor text with an attribution.
type Quote struct {
	Paragraphs []string `json:"entries"`
	By         string   `json:"by"`
}

// EntryType returns EntryQuote
func (Quote) EntryType() EntryType { return EntryQuote }

// Subsection is a named group of paragraphs, such as "At Higher Levels".
// Its paragraphs stay raw strings; they are not reclassified.
type Subsection struct {
	Name       string   `json:"name"`
	Paragraphs []string `json:"entries"`
}

// EntryType returns EntrySubsection
func (Subsection) EntryType() EntryType { return EntrySubsection }

// Table holds tabular data with an optional caption.
type Table struct {
	Caption   string     `json:"caption,omitempty"`
	ColLabels []string   `json:"colLabels"`
	Rows      [][]string `json:"rows"`
}

// EntryType returns EntryTable
func (Table) EntryType() EntryType { return EntryTable }

// ClassifyEntries converts a spell's heterogeneous entry values into typed
// Descriptions, preserving source order. An object tagged with a type
// outside the known set is dropped from the output, matching how 5e.tools
// renders only the shapes it knows.
func ClassifyEntries(entries []json.RawMessage) ([]Description, error) {
	descs := make([]Description, 0, len(entries))
	for _, raw := range entries {
		desc, err := classifyEntry(raw)
		if err != nil {
			return nil, err
		}
		if desc != nil {
			descs = append(descs, desc)
		}
	}
	return descs, nil
}

func classifyEntry(raw json.RawMessage) (Description, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty description entry")
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("decoding text entry: %w", err)
		}
		return PlainText{Text: text}, nil
	}

	var probe struct {
		Type EntryType `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decoding entry tag: %w", err)
	}

	switch probe.Type {
	case EntryList:
		var list BulletList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decoding list entry: %w", err)
		}
		return list, nil
	case EntryQuote:
		var quote Quote
		if err := json.Unmarshal(raw, &quote); err != nil {
			return nil, fmt.Errorf("decoding quote entry: %w", err)
		}
		return quote, nil
	case EntrySubsection:
		var sub Subsection
		if err := json.Unmarshal(raw, &sub); err != nil {
			return nil, fmt.Errorf("decoding subsection entry: %w", err)
		}
		return sub, nil
	case EntryTable:
		var table Table
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("decoding table entry: %w", err)
		}
		return table, nil
	default:
		return nil, nil
	}
}
