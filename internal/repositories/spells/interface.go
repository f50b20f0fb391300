package spells

//go:generate mockgen -destination=mock/mock.go -package=mockspells -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
)

// ImportInfo records the most recent bulk import run.
type ImportInfo struct {
	RunID      string    `json:"run_id"`
	Files      int       `json:"files"`
	Spells     int       `json:"spells"`
	ImportedAt time.Time `json:"imported_at"`
}

// Repository defines the interface for spell persistence
type Repository interface {
	// Create stores a new spell
	Create(ctx context.Context, record *spell.Spell) error

	// Upsert stores a spell, replacing any existing record with the same key
	Upsert(ctx context.Context, record *spell.Spell) error

	// Get retrieves a spell by key
	Get(ctx context.Context, key string) (*spell.Spell, error)

	// ListKeys returns every stored spell key, sorted
	ListKeys(ctx context.Context) ([]string, error)

	// ListByLevel retrieves all spells of a given level
	ListByLevel(ctx context.Context, level int) ([]*spell.Spell, error)

	// ListBySchool retrieves all spells of a given school
	ListBySchool(ctx context.Context, school string) ([]*spell.Spell, error)

	// Delete removes a spell
	Delete(ctx context.Context, key string) error

	// SetImportInfo records a completed import run
	SetImportInfo(ctx context.Context, info *ImportInfo) error

	// GetImportInfo retrieves the most recent import run
	GetImportInfo(ctx context.Context) (*ImportInfo, error)
}
