// Package draft owns the single live resume draft of a session and its
// persisted slot.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"resume-builder/internal/logging"
	"resume-builder/internal/model"
)

// ErrSlotEmpty is returned by a Slot that holds no draft yet.
var ErrSlotEmpty = errors.New("draft slot is empty")

// Slot is the persisted key-value location of the draft. Write must never let
// a concurrent Read observe a partially written value.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, payload []byte) error
}

// PersistenceError wraps load, parse and save failures.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("draft %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// Store holds the current draft in memory. Readers get deep copies, so a
// draft being serialized can never be mutated underneath the encoder.
type Store struct {
	mu      sync.RWMutex
	current model.ResumeData
	slot    Slot
}

func NewStore(slot Slot) *Store {
	return &Store{current: model.New(), slot: slot}
}

// Load reads the persisted slot. An empty slot, an unreadable slot or a
// payload that does not parse all yield the canonical empty draft.
func (s *Store) Load(ctx context.Context) model.ResumeData {
	data, _ := s.load(ctx)
	return data
}

// Restore loads the persisted draft and makes it current. found is false when
// nothing usable was persisted; the current draft is left alone in that case.
func (s *Store) Restore(ctx context.Context) (data model.ResumeData, found bool) {
	data, found = s.load(ctx)
	if found {
		s.Replace(data)
	}
	return data, found
}

func (s *Store) load(ctx context.Context) (model.ResumeData, bool) {
	raw, err := s.slot.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			logging.Logger.WithError(&PersistenceError{Op: "load", Cause: err}).Warn("draft: falling back to empty draft")
		}
		return model.New(), false
	}

	data, err := Decode(raw)
	if err != nil {
		logging.Logger.WithError(err).Warn("draft: persisted draft unreadable, falling back to empty draft")
		return model.New(), false
	}
	return data, true
}

// Save serializes data and writes it to the slot.
func (s *Store) Save(ctx context.Context, data model.ResumeData) error {
	payload, err := json.Marshal(data.Normalize())
	if err != nil {
		return &PersistenceError{Op: "save", Cause: err}
	}
	if err := s.slot.Write(ctx, payload); err != nil {
		return &PersistenceError{Op: "save", Cause: err}
	}
	return nil
}

// SaveCurrent persists a snapshot of the current draft taken at call time.
func (s *Store) SaveCurrent(ctx context.Context) error {
	return s.Save(ctx, s.Current())
}

// Replace sets the current draft. It does not persist.
func (s *Store) Replace(data model.ResumeData) {
	snapshot := data.Normalize().Clone()
	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()
}

// Current returns a deep copy of the current draft.
func (s *Store) Current() model.ResumeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Decode parses a persisted payload, checking its shape first.
func Decode(raw []byte) (model.ResumeData, error) {
	if err := model.ValidateDocument(raw); err != nil {
		return model.ResumeData{}, &PersistenceError{Op: "parse", Cause: err}
	}
	var data model.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.ResumeData{}, &PersistenceError{Op: "parse", Cause: err}
	}
	return data.Normalize(), nil
}
