package prompts

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// System provides prompt collection operations.
type System interface {
	Handler() *Handler
	Create(content string) (*Prompt, error)
	List() ([]Prompt, int)
	Get(index int) (*Prompt, error)
	Update(index int, content string) (*UpdateResult, error)
	Delete(index int) (*Prompt, error)
}

// store is the in-memory prompt collection. The collection exists only
// for the lifetime of the process; there is no persistence.
//
// The source behavior assumes sequential request dispatch. net/http
// serves concurrently, so the slice is guarded with a RWMutex to keep
// each operation a single atomic mutation.
type store struct {
	mu      sync.RWMutex
	prompts []Prompt
	logger  *slog.Logger
}

// New creates an empty in-memory prompt store implementing System.
func New(logger *slog.Logger) System {
	return &store{
		prompts: []Prompt{},
		logger:  logger.With("system", "prompts"),
	}
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Create appends a new record with id equal to the pre-insert length.
// Content is trimmed; empty or whitespace-only content fails with
// ErrEmptyPrompt.
func (s *store) Create(content string) (*Prompt, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Prompt{
		ID:        len(s.prompts),
		Content:   trimmed,
		CreatedAt: time.Now(),
	}
	s.prompts = append(s.prompts, p)

	s.logger.Info("prompt created", "index", p.ID)
	return &p, nil
}

// List returns a copy of the full ordered collection and its count.
func (s *store) List() ([]Prompt, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Prompt, len(s.prompts))
	copy(out, s.prompts)
	return out, len(out)
}

// Get returns the record at the given position.
func (s *store) Get(index int) (*Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkRange(index); err != nil {
		return nil, err
	}

	p := s.prompts[index]
	return &p, nil
}

// Update replaces the content at the given position in place, setting
// updated_at. The record's id is unchanged.
func (s *store) Update(index int, content string) (*UpdateResult, error) {
	trimmed := strings.TrimSpace(content)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRange(index); err != nil {
		return nil, err
	}
	if trimmed == "" {
		return nil, fmt.Errorf("new %w", ErrEmptyPrompt)
	}

	old := s.prompts[index].Content
	now := time.Now()
	s.prompts[index].Content = trimmed
	s.prompts[index].UpdatedAt = &now

	s.logger.Info("prompt updated", "index", index)
	return &UpdateResult{
		Index:      index,
		OldContent: old,
		NewContent: trimmed,
	}, nil
}

// Delete removes the record at the given position and renumbers every
// remaining record at a higher position down by one, preserving the
// dense 0-based invariant. The removed record is returned with its
// original id.
func (s *store) Delete(index int) (*Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRange(index); err != nil {
		return nil, err
	}

	removed := s.prompts[index]
	s.prompts = append(s.prompts[:index], s.prompts[index+1:]...)
	for i := index; i < len(s.prompts); i++ {
		s.prompts[i].ID = i
	}

	s.logger.Info("prompt deleted", "index", index, "remaining", len(s.prompts))
	return &removed, nil
}

// checkRange validates the index against [0, len). Callers must hold
// at least a read lock.
func (s *store) checkRange(index int) error {
	if index < 0 || index >= len(s.prompts) {
		return fmt.Errorf(
			"%w: %d (available indices: 0-%d)",
			ErrNotFound, index, len(s.prompts)-1,
		)
	}
	return nil
}
