package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	fastingdomain "jejum/internal/modules/fasting/domain"
	historydto "jejum/internal/modules/history/dto"
	historyin "jejum/internal/modules/history/port/in"
	"jejum/internal/modules/history/service"
	"jejum/internal/modules/history/usecase"
	apperrors "jejum/internal/platform/errors"
	"jejum/internal/platform/instant"
	"jejum/internal/state"
)

type fakeID struct {
	next  string
	calls int
}

func (g *fakeID) New() string {
	g.calls++
	return g.next
}

type memStateStore struct {
	current state.AppState
	saves   int
}

func (m *memStateStore) Load(context.Context) (state.AppState, error) {
	return m.current, nil
}

func (m *memStateStore) Save(_ context.Context, appState state.AppState) error {
	m.current = appState
	m.saves++
	return nil
}

type memIndex struct {
	upserts []fastingdomain.FastingSession
	deletes []string
}

func (m *memIndex) Upsert(_ context.Context, session fastingdomain.FastingSession) error {
	m.upserts = append(m.upserts, session)
	return nil
}

func (m *memIndex) Delete(_ context.Context, id string) error {
	m.deletes = append(m.deletes, id)
	return nil
}

func seeded(sessions ...fastingdomain.FastingSession) *memStateStore {
	s := state.Default()
	s.History = append(s.History, sessions...)
	return &memStateStore{current: s}
}

func newInteractor(states *memStateStore, idGen *fakeID) (historyin.Usecase, *memIndex) {
	index := &memIndex{}
	return usecase.NewInteractor(service.NewHistoryService(idGen), states, index), index
}

func existingSession(id string, start time.Time) fastingdomain.FastingSession {
	s := fastingdomain.FastingSession{
		ID:          id,
		StartTime:   instant.Of(start),
		EndTime:     instant.Of(start.Add(16 * time.Hour)),
		TargetHours: 16,
		Mode:        fastingdomain.Type16h,
	}
	s.RecomputeDerived()
	return s
}

func TestAddAssignsFreshIDAndSorts(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	day3 := day1.Add(48 * time.Hour)
	states := seeded(existingSession("old", day3))
	idGen := &fakeID{next: "fresh"}
	interactor, index := newInteractor(states, idGen)

	got, err := interactor.Add(context.Background(), historydto.RecordInput{
		ID:          "caller-made-up",
		Start:       day1,
		End:         day1.Add(17 * time.Hour),
		TargetHours: 16,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != "fresh" {
		t.Errorf("id = %q, want the generated one", got.ID)
	}
	if !got.Completed || got.ActualHours != 17 {
		t.Errorf("derived = %+v", got)
	}

	if len(states.current.History) != 2 {
		t.Fatalf("history len = %d", len(states.current.History))
	}
	// Newest first: the pre-existing later session stays on top.
	if states.current.History[0].ID != "old" || states.current.History[1].ID != "fresh" {
		t.Errorf("order = %q, %q", states.current.History[0].ID, states.current.History[1].ID)
	}
	if len(index.upserts) != 1 || index.upserts[0].ID != "fresh" {
		t.Errorf("index upserts = %+v", index.upserts)
	}
}

func TestAddRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	states := seeded()
	interactor, index := newInteractor(states, &fakeID{next: "x"})

	tests := []struct {
		name  string
		input historydto.RecordInput
	}{
		{"missing end", historydto.RecordInput{Start: day, TargetHours: 16}},
		{"end before start", historydto.RecordInput{Start: day, End: day.Add(-time.Hour), TargetHours: 16}},
		{"zero target", historydto.RecordInput{Start: day, End: day.Add(time.Hour)}},
		{"unknown mode", historydto.RecordInput{Start: day, End: day.Add(time.Hour), TargetHours: 16, ModeID: "99h"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := interactor.Add(context.Background(), tt.input); err == nil {
				t.Error("want error")
			}
		})
	}
	if states.saves != 0 || len(index.upserts) != 0 {
		t.Errorf("rejected input reached persistence: saves=%d upserts=%d", states.saves, len(index.upserts))
	}
}

func TestEditMergesAndRederives(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	original := existingSession("rec-1", day)
	original.Notes = "original notes"
	states := seeded(original)
	interactor, index := newInteractor(states, &fakeID{next: "unused"})

	got, err := interactor.Edit(context.Background(), historydto.RecordInput{
		ID:  "rec-1",
		End: day.Add(10 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got.ActualHours != 10 || got.Completed {
		t.Errorf("derived = %+v, want 10h incomplete", got)
	}

	edited := states.current.History[0]
	if edited.Notes != "original notes" {
		t.Errorf("untouched field lost: notes = %q", edited.Notes)
	}
	if edited.Mode != fastingdomain.Type16h {
		t.Errorf("mode = %q, want preserved", edited.Mode)
	}
	if len(index.upserts) != 1 || index.upserts[0].ID != "rec-1" {
		t.Errorf("index upserts = %+v", index.upserts)
	}
}

func TestEditPreservesWaterCount(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	original := existingSession("rec-1", day)
	original.WaterCount = 7
	states := seeded(original)
	interactor, _ := newInteractor(states, &fakeID{next: "unused"})

	_, err := interactor.Edit(context.Background(), historydto.RecordInput{
		ID:    "rec-1",
		Notes: "felt great",
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	edited := states.current.History[0]
	if edited.WaterCount != 7 {
		t.Errorf("water count = %d, want 7", edited.WaterCount)
	}
	if edited.Notes != "felt great" {
		t.Errorf("notes = %q", edited.Notes)
	}

	// An explicit negative count clears the stored value.
	if _, err := interactor.Edit(context.Background(), historydto.RecordInput{ID: "rec-1", WaterCount: -1}); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got := states.current.History[0].WaterCount; got != 0 {
		t.Errorf("cleared water count = %d, want 0", got)
	}
}

func TestEditUnknownID(t *testing.T) {
	t.Parallel()

	states := seeded()
	interactor, _ := newInteractor(states, &fakeID{next: "x"})

	_, err := interactor.Edit(context.Background(), historydto.RecordInput{ID: "ghost"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	states := seeded(existingSession("rec-1", day))
	interactor, index := newInteractor(states, &fakeID{next: "x"})

	if err := interactor.Delete(context.Background(), "rec-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(states.current.History) != 0 {
		t.Errorf("history len = %d, want 0", len(states.current.History))
	}
	if len(index.deletes) != 1 || index.deletes[0] != "rec-1" {
		t.Errorf("index deletes = %v", index.deletes)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	states := seeded(existingSession("rec-1", day))
	interactor, index := newInteractor(states, &fakeID{next: "x"})

	if err := interactor.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if states.saves != 0 || len(index.deletes) != 0 {
		t.Errorf("no-op delete touched persistence: saves=%d deletes=%v", states.saves, index.deletes)
	}
	if len(states.current.History) != 1 {
		t.Errorf("history len = %d, want 1", len(states.current.History))
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	states := seeded(existingSession("b", day2), existingSession("a", day1))
	interactor, _ := newInteractor(states, &fakeID{next: "x"})

	got, err := interactor.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("list = %+v", got)
	}
}
