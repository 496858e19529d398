package draft

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSlot struct {
	mu      sync.Mutex
	payload []byte
	writes  int32
	readErr error
	failing bool
}

func (m *memSlot) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.payload == nil {
		return nil, ErrSlotEmpty
	}
	return append([]byte{}, m.payload...), nil
}

func (m *memSlot) Write(ctx context.Context, payload []byte) error {
	atomic.AddInt32(&m.writes, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("disk full")
	}
	m.payload = append([]byte{}, payload...)
	return nil
}

func sampleDraft() model.ResumeData {
	d := model.New()
	d.PersonalInfo = model.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Title: "Developer", LinkedIn: "https://linkedin.com/in/jane"}
	d.Education = []model.Education{{Degree: "B.Tech", Institution: "X College", StartYear: model.Year(2020), EndYear: model.Year(2024)}}
	d.Skills = []model.Skill{{Name: "Python", Category: "technical"}}
	d.Projects = []model.Project{{Title: "Site", Technologies: []string{"Go", "HTMX"}}}
	d.Summary = "Builder of things."
	d.SelectedRole = "developer"
	return d
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, data := range map[string]model.ResumeData{
		"populated": sampleDraft(),
		"empty":     model.New(),
	} {
		t.Run(name, func(t *testing.T) {
			s := NewStore(&memSlot{})
			require.NoError(t, s.Save(ctx, data))
			assert.Equal(t, data, s.Load(ctx))
		})
	}
}

func TestStore_LoadFallsBackToDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot", func(t *testing.T) {
		s := NewStore(&memSlot{})
		assert.Equal(t, model.New(), s.Load(ctx))
	})
	t.Run("garbage payload", func(t *testing.T) {
		s := NewStore(&memSlot{payload: []byte("{not json")})
		assert.Equal(t, model.New(), s.Load(ctx))
	})
	t.Run("wrong shape", func(t *testing.T) {
		s := NewStore(&memSlot{payload: []byte(`{"personalInfo":{"firstName":42}}`)})
		assert.Equal(t, model.New(), s.Load(ctx))
	})
	t.Run("read error", func(t *testing.T) {
		s := NewStore(&memSlot{readErr: errors.New("permission denied")})
		assert.Equal(t, model.New(), s.Load(ctx))
	})
}

func TestStore_Restore(t *testing.T) {
	ctx := context.Background()
	slot := &memSlot{}
	s := NewStore(slot)

	_, found := s.Restore(ctx)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, sampleDraft()))
	data, found := s.Restore(ctx)
	assert.True(t, found)
	assert.Equal(t, sampleDraft(), data)
	assert.Equal(t, sampleDraft(), s.Current())
}

func TestStore_SaveFailure(t *testing.T) {
	s := NewStore(&memSlot{failing: true})
	err := s.Save(context.Background(), sampleDraft())
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "save", pe.Op)
}

func TestStore_ReplaceDoesNotPersist(t *testing.T) {
	slot := &memSlot{}
	s := NewStore(slot)
	s.Replace(sampleDraft())
	assert.Equal(t, int32(0), atomic.LoadInt32(&slot.writes))
	assert.Equal(t, "Jane", s.Current().PersonalInfo.FirstName)
}

func TestStore_CurrentIsSnapshot(t *testing.T) {
	s := NewStore(&memSlot{})
	in := sampleDraft()
	s.Replace(in)

	in.Skills[0].Name = "changed by caller"
	got := s.Current()
	got.Projects[0].Technologies[0] = "changed by reader"

	again := s.Current()
	assert.Equal(t, "Python", again.Skills[0].Name)
	assert.Equal(t, "Go", again.Projects[0].Technologies[0])
}

func TestStore_AutosaveTickKeepsGoingAfterFailure(t *testing.T) {
	slot := &memSlot{failing: true}
	s := NewStore(slot)
	s.Replace(sampleDraft())

	s.autosaveTick(context.Background())
	slot.mu.Lock()
	slot.failing = false
	slot.mu.Unlock()
	s.autosaveTick(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&slot.writes))
	assert.Equal(t, sampleDraft(), s.Load(context.Background()))
}

func TestStore_StartAutosave(t *testing.T) {
	slot := &memSlot{}
	s := NewStore(slot)
	s.Replace(sampleDraft())

	stop, err := s.StartAutosave(time.Second)
	require.NoError(t, err)
	defer stop()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&slot.writes) > 0
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, sampleDraft(), s.Load(context.Background()))
}

func TestStore_StartAutosaveDisabled(t *testing.T) {
	s := NewStore(&memSlot{})
	stop, err := s.StartAutosave(0)
	require.NoError(t, err)
	stop()
}

func TestDecode_NormalizesMissingSequences(t *testing.T) {
	data, err := Decode([]byte(`{"personalInfo":{"firstName":"A"}}`))
	require.NoError(t, err)
	assert.Equal(t, []model.Skill{}, data.Skills)
	assert.Equal(t, "A", data.PersonalInfo.FirstName)
}
