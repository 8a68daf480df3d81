package domain_test

import (
	"testing"
	"time"

	"jejum/internal/modules/fasting/domain"
	"jejum/internal/platform/instant"
)

func TestRecomputeDerived(t *testing.T) {
	t.Parallel()
	start := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)

	session := domain.FastingSession{
		ID:          "a",
		StartTime:   instant.Of(start),
		EndTime:     instant.Of(start.Add(17 * time.Hour)),
		TargetHours: 16,
		// Stale values a form could have carried.
		ActualHours: 2,
		Completed:   false,
	}
	session.RecomputeDerived()
	if session.ActualHours != 17 {
		t.Fatalf("ActualHours = %v, want 17", session.ActualHours)
	}
	if !session.Completed {
		t.Fatal("17h over a 16h target must be completed")
	}

	session.EndTime = instant.Instant{}
	session.RecomputeDerived()
	if session.ActualHours != 0 || session.Completed {
		t.Fatal("active session must have zero derived values")
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	start := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
	valid := domain.FastingSession{ID: "a", StartTime: instant.Of(start), TargetHours: 16}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*domain.FastingSession)
	}{
		{"zero target", func(s *domain.FastingSession) { s.TargetHours = 0 }},
		{"missing start", func(s *domain.FastingSession) { s.StartTime = instant.Instant{} }},
		{"end before start", func(s *domain.FastingSession) { s.EndTime = instant.Of(start.Add(-time.Hour)) }},
		{"bad mood", func(s *domain.FastingSession) { s.Mood = "ecstatic" }},
		{"negative water", func(s *domain.FastingSession) { s.WaterCount = -1 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := valid
			tc.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
