package domain_test

import (
	"errors"
	"strings"
	"testing"

	"jejum/internal/modules/coach/domain"
)

func validManifest() domain.Manifest {
	return domain.Manifest{
		Name:         "reference",
		Version:      "1.0.0",
		Binary:       "plugins/reference",
		SHA256:       strings.Repeat("ab", 32),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityReport},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.Manifest)
		wantErr bool
	}{
		{"valid", func(*domain.Manifest) {}, false},
		{"both capabilities", func(m *domain.Manifest) {
			m.Capabilities = []domain.Capability{domain.CapabilityReport, domain.CapabilityAnalyze}
		}, false},
		{"missing name", func(m *domain.Manifest) { m.Name = "" }, true},
		{"missing version", func(m *domain.Manifest) { m.Version = "" }, true},
		{"missing binary", func(m *domain.Manifest) { m.Binary = "" }, true},
		{"uppercase sha", func(m *domain.Manifest) { m.SHA256 = strings.Repeat("AB", 32) }, true},
		{"short sha", func(m *domain.Manifest) { m.SHA256 = "abc123" }, true},
		{"no capabilities", func(m *domain.Manifest) { m.Capabilities = nil }, true},
		{"unknown capability", func(m *domain.Manifest) {
			m.Capabilities = []domain.Capability{"telemetry"}
		}, true},
		{"duplicate capability", func(m *domain.Manifest) {
			m.Capabilities = []domain.Capability{domain.CapabilityReport, domain.CapabilityReport}
		}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := validManifest()
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr && err == nil {
				t.Error("want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestHasCapability(t *testing.T) {
	t.Parallel()

	m := validManifest()
	if !m.HasCapability(domain.CapabilityReport) {
		t.Error("report capability missing")
	}
	if m.HasCapability(domain.CapabilityAnalyze) {
		t.Error("analyze capability unexpectedly present")
	}
}

func TestCapabilityKind(t *testing.T) {
	t.Parallel()

	if got := domain.CapabilityReport.Kind(); got != domain.CommandKindReport {
		t.Errorf("report kind = %q", got)
	}
	if got := domain.CapabilityAnalyze.Kind(); got != domain.CommandKindAnalyze {
		t.Errorf("analyze kind = %q", got)
	}
}

func TestExecuteResultValidateFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  domain.ExecuteResult
		kind    domain.CommandKind
		wantErr bool
	}{
		{"report with text", domain.ExecuteResult{Stdout: "7 jejuns esta semana"}, domain.CommandKindReport, false},
		{"report without text", domain.ExecuteResult{}, domain.CommandKindReport, true},
		{"report with only whitespace", domain.ExecuteResult{Stdout: "  \n"}, domain.CommandKindReport, true},
		{"analysis with json", domain.ExecuteResult{OutputJSON: `{"direction":"up"}`}, domain.CommandKindAnalyze, false},
		{"analysis with broken json", domain.ExecuteResult{OutputJSON: "{broken"}, domain.CommandKindAnalyze, true},
		{"analysis with no json", domain.ExecuteResult{Stdout: "texto"}, domain.CommandKindAnalyze, true},
		{"failed run is exempt", domain.ExecuteResult{ExitCode: 2, Stderr: "boom"}, domain.CommandKindReport, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.result.ValidateFor(tt.kind)
			if tt.wantErr && !errors.Is(err, domain.ErrMalformedPluginOutput) {
				t.Errorf("err = %v, want ErrMalformedPluginOutput", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestExecuteRequestValidate(t *testing.T) {
	t.Parallel()

	valid := domain.ExecuteRequest{
		CommandID: "weekly-report",
		Context:   domain.ExecuteContext{DataDir: "/data", StatePath: "/data/state.json"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request: %v", err)
	}

	missingCommand := valid
	missingCommand.CommandID = ""
	if err := missingCommand.Validate(); err == nil {
		t.Error("missing command id: want error")
	}

	missingState := valid
	missingState.Context.StatePath = ""
	if err := missingState.Validate(); err == nil {
		t.Error("missing state path: want error")
	}
}

func TestCommandDescriptorValidate(t *testing.T) {
	t.Parallel()

	if err := (domain.CommandDescriptor{ID: "trend", Kind: domain.CommandKindAnalyze}).Validate(); err != nil {
		t.Errorf("valid descriptor: %v", err)
	}
	if err := (domain.CommandDescriptor{Kind: domain.CommandKindReport}).Validate(); err == nil {
		t.Error("missing id: want error")
	}
	if err := (domain.CommandDescriptor{ID: "x", Kind: "shell"}).Validate(); err == nil {
		t.Error("unknown kind: want error")
	}
}
