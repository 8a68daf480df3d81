package state_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	fastingdomain "jejum/internal/modules/fasting/domain"
	apperrors "jejum/internal/platform/errors"
	"jejum/internal/platform/instant"
	"jejum/internal/state"
)

func TestFileStoreLoadMissingFileYieldsDefault(t *testing.T) {
	t.Parallel()

	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.User.Level != 1 || got.User.NextLevelXP != 100 {
		t.Errorf("default user = %+v", got.User)
	}
	if got.History == nil {
		t.Error("default history is nil")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	s := state.Default()
	s.User.Name = "Ana"
	s.User.CurrentXP = 250
	s.History = []fastingdomain.FastingSession{{
		ID:          "abc123",
		StartTime:   instant.Of(time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)),
		TargetHours: 16,
	}}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.User.Name != "Ana" {
		t.Errorf("name = %q, want Ana", got.User.Name)
	}
	if got.User.Level != 3 {
		t.Errorf("level = %d, want 3 (derived from 250 XP)", got.User.Level)
	}
	if len(got.History) != 1 || got.History[0].ID != "abc123" {
		t.Errorf("history = %+v", got.History)
	}
}

func TestFileStoreSaveKeepsBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	store := state.NewFileStore(path)

	first := state.Default()
	first.User.Name = "before"
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	prev, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read state: %v", err)
	}

	second := state.Default()
	second.User.Name = "after"
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != string(prev) {
		t.Error("backup does not match the previous state file")
	}
}

func TestFileStoreLoadRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := state.NewFileStore(path).Load(context.Background()); err == nil {
		t.Error("corrupt file: want error")
	}
}

func TestValidateImport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"user":{"name":"Ana"},"history":[]}`, false},
		{"empty object", `{}`, true},
		{"missing history", `{"user":{}}`, true},
		{"history not array", `{"user":{},"history":{}}`, true},
		{"user not object", `{"user":[],"history":[]}`, true},
		{"not json", `hello`, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := state.ValidateImport([]byte(tt.payload))
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrMalformedImport) {
					t.Errorf("err = %v, want ErrMalformedImport", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateImportSanitises(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"user":{"name":"Ana","currentXP":250,"level":99},"history":[]}`)
	got, err := state.ValidateImport(payload)
	if err != nil {
		t.Fatalf("ValidateImport: %v", err)
	}
	if got.User.Level != 3 {
		t.Errorf("level = %d, want 3", got.User.Level)
	}
}
