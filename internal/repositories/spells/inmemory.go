package spells

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the spell repository
// Useful for testing and development
type InMemoryRepository struct {
	mu         sync.RWMutex
	spells     map[string]*spell.Spell
	importInfo *ImportInfo
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		spells: make(map[string]*spell.Spell),
	}
}

// Create stores a new spell
func (r *InMemoryRepository) Create(ctx context.Context, record *spell.Spell) error {
	if record == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if record.Key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spells[record.Key]; exists {
		return dnderr.AlreadyExistsf("spell with key '%s' already exists", record.Key).
			WithMeta("spell_key", record.Key)
	}

	// Copy to avoid external modifications; parsed records are never
	// mutated so a shallow copy is enough
	recordCopy := *record
	r.spells[record.Key] = &recordCopy

	return nil
}

// Upsert stores a spell, replacing any existing record with the same key
func (r *InMemoryRepository) Upsert(ctx context.Context, record *spell.Spell) error {
	if record == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if record.Key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	recordCopy := *record
	r.spells[record.Key] = &recordCopy

	return nil
}

// Get retrieves a spell by key
func (r *InMemoryRepository) Get(ctx context.Context, key string) (*spell.Spell, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.spells[key]
	if !exists {
		return nil, dnderr.NotFoundf("spell with key '%s' not found", key).
			WithMeta("spell_key", key)
	}

	recordCopy := *record
	return &recordCopy, nil
}

// ListKeys returns every stored spell key, sorted
func (r *InMemoryRepository) ListKeys(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := lo.Keys(r.spells)
	sort.Strings(keys)
	return keys, nil
}

// ListByLevel retrieves all spells of a given level
func (r *InMemoryRepository) ListByLevel(ctx context.Context, level int) ([]*spell.Spell, error) {
	if level < 0 {
		return nil, dnderr.InvalidArgument("spell level cannot be negative")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*spell.Spell
	for _, record := range r.spells {
		if record.Level == level {
			recordCopy := *record
			result = append(result, &recordCopy)
		}
	}

	return result, nil
}

// ListBySchool retrieves all spells of a given school
func (r *InMemoryRepository) ListBySchool(ctx context.Context, school string) ([]*spell.Spell, error) {
	if school == "" {
		return nil, dnderr.InvalidArgument("school is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*spell.Spell
	for _, record := range r.spells {
		if strings.EqualFold(record.School, school) {
			recordCopy := *record
			result = append(result, &recordCopy)
		}
	}

	return result, nil
}

// Delete removes a spell
func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spells[key]; !exists {
		return dnderr.NotFoundf("spell with key '%s' not found", key).
			WithMeta("spell_key", key)
	}

	delete(r.spells, key)
	return nil
}

// SetImportInfo records a completed import run
func (r *InMemoryRepository) SetImportInfo(ctx context.Context, info *ImportInfo) error {
	if info == nil {
		return dnderr.InvalidArgument("import info cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	infoCopy := *info
	r.importInfo = &infoCopy
	return nil
}

// GetImportInfo retrieves the most recent import run
func (r *InMemoryRepository) GetImportInfo(ctx context.Context) (*ImportInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.importInfo == nil {
		return nil, dnderr.NotFound("no import has been recorded")
	}

	infoCopy := *r.importInfo
	return &infoCopy, nil
}
