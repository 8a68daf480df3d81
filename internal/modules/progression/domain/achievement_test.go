package domain_test

import (
	"testing"
	"time"

	"jejum/internal/modules/progression/domain"
)

func TestEvaluateUnlocksOnceAndStampsDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	facts := domain.FinishFacts{Streak: 3, ActualHours: 16, TotalXP: 200}

	updated, unlocked := domain.Evaluate(domain.Catalog(), facts, now)
	ids := map[string]bool{}
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	for _, want := range []string{"first_fast", "streak_3", "fast_16"} {
		if !ids[want] {
			t.Fatalf("expected %s unlocked, got %v", want, ids)
		}
	}
	if ids["streak_7"] || ids["fast_24"] || ids["xp_1000"] {
		t.Fatalf("unexpected unlocks: %v", ids)
	}
	for _, a := range updated {
		if a.Unlocked && !a.DateUnlocked.Time.Equal(now) {
			t.Fatalf("achievement %s: DateUnlocked = %v, want %v", a.ID, a.DateUnlocked.Time, now)
		}
	}

	// A second pass with the same facts unlocks nothing more.
	later := now.Add(48 * time.Hour)
	again, newly := domain.Evaluate(updated, facts, later)
	if len(newly) != 0 {
		t.Fatalf("re-evaluation unlocked %d achievements", len(newly))
	}
	for i := range again {
		if again[i].Unlocked && !again[i].DateUnlocked.Time.Equal(now) {
			t.Fatalf("achievement %s: unlock date moved", again[i].ID)
		}
	}
}

func TestEvaluateNeverRelocks(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	updated, _ := domain.Evaluate(domain.Catalog(), domain.FinishFacts{Streak: 30, ActualHours: 25, TotalXP: 1500}, now)
	// Worse facts later must not flip anything back.
	again, _ := domain.Evaluate(updated, domain.FinishFacts{}, now.Add(time.Hour))
	for _, a := range again {
		if !a.Unlocked {
			t.Fatalf("achievement %s relocked", a.ID)
		}
	}
}

func TestMergeWithCatalogBackfillsAndDropsUnknown(t *testing.T) {
	t.Parallel()
	stored := []domain.Achievement{
		{ID: "first_fast", Title: "O Início", Unlocked: true},
		{ID: "removed_badge", Unlocked: true},
	}
	merged := domain.MergeWithCatalog(stored)
	if len(merged) != len(domain.Catalog()) {
		t.Fatalf("merged length = %d, want %d", len(merged), len(domain.Catalog()))
	}
	for _, a := range merged {
		switch a.ID {
		case "first_fast":
			if !a.Unlocked {
				t.Fatal("stored unlock lost in merge")
			}
		case "removed_badge":
			t.Fatal("unknown achievement survived merge")
		default:
			if a.Unlocked {
				t.Fatalf("catalog entry %s unexpectedly unlocked", a.ID)
			}
		}
	}
}

func TestApplyFinish(t *testing.T) {
	t.Parallel()
	finishedAt := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)
	lastFast := finishedAt.Add(-25 * time.Hour)

	out := domain.ApplyFinish(95, 1, 2, lastFast, domain.Catalog(), 16, true, finishedAt)

	if out.XPEarned != 210 {
		t.Fatalf("XPEarned = %d, want 210", out.XPEarned)
	}
	if out.NewXP != 305 {
		t.Fatalf("NewXP = %d, want 305", out.NewXP)
	}
	if out.NewLevel != 4 || !out.LeveledUp {
		t.Fatalf("NewLevel = %d LeveledUp = %t, want 4 true", out.NewLevel, out.LeveledUp)
	}
	if out.NewStreak != 3 {
		t.Fatalf("NewStreak = %d, want 3", out.NewStreak)
	}
	ids := map[string]bool{}
	for _, a := range out.Unlocked {
		ids[a.ID] = true
	}
	if !ids["first_fast"] || !ids["streak_3"] || !ids["fast_16"] {
		t.Fatalf("unexpected unlock set: %v", ids)
	}
}
