package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"jejum/internal/modules/fasting/domain"
	fastingout "jejum/internal/modules/fasting/port/out"
	"jejum/internal/platform/markdown"
	"jejum/internal/platform/slug"
)

// MarkdownNoteStore writes one journal note per finished fast, with the
// session facts in YAML frontmatter and the intention/journal as the body.
type MarkdownNoteStore struct {
	notesDir string
}

func NewMarkdownNoteStore(notesDir string) fastingout.NoteStore {
	return &MarkdownNoteStore{notesDir: notesDir}
}

func (s *MarkdownNoteStore) Save(_ context.Context, session domain.FastingSession) (string, error) {
	date := session.StartTime.Time
	dir := filepath.Join(s.notesDir, date.Format("2006"), date.Format("01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create notes dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("02-150405"), slug.Make(string(session.Mode)))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             session.ID,
		"mode":           string(session.Mode),
		"started_at":     session.StartTime.Format("2006-01-02T15:04:05Z07:00"),
		"ended_at":       session.EndTime.Format("2006-01-02T15:04:05Z07:00"),
		"target_hours":   session.TargetHours,
		"actual_hours":   session.ActualHours,
		"completed":      session.Completed,
		"water_count":    session.WaterCount,
		"mood":           string(session.Mood),
		"last_meal":      session.LastMeal,
	}
	body := fmt.Sprintf("# Jejum %s\n\n- Meta: %.1fh\n- Duração: %.1fh\n\n## Intenção\n\n%s\n\n## Diário\n\n%s\n",
		string(session.Mode), session.TargetHours, session.ActualHours, session.Intention, session.Notes)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}
