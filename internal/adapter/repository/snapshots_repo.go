package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// SnapshotsRepo is the process-lifetime resume collection behind
// /api/resumes. Keys are creation times in Unix milliseconds; a key that is
// already taken is bumped to the next free millisecond.
type SnapshotsRepo struct {
	mu    sync.RWMutex
	byKey map[string]*domain.Snapshot
	order []string
	now   func() time.Time
}

func NewSnapshotsRepo() *SnapshotsRepo {
	return &SnapshotsRepo{byKey: map[string]*domain.Snapshot{}, now: time.Now}
}

func (r *SnapshotsRepo) Save(ctx context.Context, data model.ResumeData) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	created := r.now()
	ms := created.UnixMilli()
	key := strconv.FormatInt(ms, 10)
	for r.byKey[key] != nil {
		ms++
		key = strconv.FormatInt(ms, 10)
	}

	snap := &domain.Snapshot{
		ID:        uuid.New(),
		Key:       key,
		Title:     domain.SnapshotTitle(data),
		CreatedAt: created,
		Resume:    data.Normalize().Clone(),
	}
	r.byKey[key] = snap
	r.order = append(r.order, key)
	return cloneSnapshot(snap), nil
}

// List returns every saved snapshot in insertion order.
func (r *SnapshotsRepo) List(ctx context.Context) ([]domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Snapshot, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, *cloneSnapshot(r.byKey[k]))
	}
	return out, nil
}

// Resumes returns the resume of every snapshot in insertion order.
func (r *SnapshotsRepo) Resumes(ctx context.Context) ([]model.ResumeData, error) {
	snaps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ResumeData, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, s.Resume)
	}
	return out, nil
}

// Delete removes the snapshot stored under key and reports whether it
// existed.
func (r *SnapshotsRepo) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byKey[key] == nil {
		return false, nil
	}
	delete(r.byKey, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func cloneSnapshot(s *domain.Snapshot) *domain.Snapshot {
	c := *s
	c.Resume = s.Resume.Clone()
	return &c
}
