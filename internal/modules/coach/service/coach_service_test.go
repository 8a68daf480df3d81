package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jejum/internal/modules/coach/domain"
	"jejum/internal/modules/coach/dto"
	"jejum/internal/modules/coach/service"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
	err       error
}

func (f *fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, f.err
}

type fakeHost struct {
	lifecycleErr error
	commands     []domain.CommandDescriptor
	result       domain.ExecuteResult
	executed     []domain.ExecuteRequest
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return f.lifecycleErr
}

func (f *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version, Capabilities: m.Capabilities}, nil
}

func (f *fakeHost) ListCommands(context.Context, domain.Manifest) ([]domain.CommandDescriptor, error) {
	return f.commands, nil
}

func (f *fakeHost) Execute(_ context.Context, _ domain.Manifest, req domain.ExecuteRequest) (domain.ExecuteResult, error) {
	f.executed = append(f.executed, req)
	return f.result, nil
}

// writeBinary creates a fake plugin binary and returns its path and sha256.
func writeBinary(t *testing.T) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coach-plugin")
	payload := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatal(err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func manifestFor(binary, sum string) domain.Manifest {
	return domain.Manifest{
		Name:         "reference",
		Version:      "1.0.0",
		Binary:       binary,
		SHA256:       sum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityReport, domain.CapabilityAnalyze},
	}
}

func executeInput() dto.ExecuteInput {
	return dto.ExecuteInput{
		PluginName: "reference",
		CommandID:  "weekly-report",
		DataDir:    "/data",
		StatePath:  "/data/state.json",
	}
}

func TestExecuteHappyPath(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	host := &fakeHost{
		commands: []domain.CommandDescriptor{{ID: "weekly-report", Kind: domain.CommandKindReport}},
		result:   domain.ExecuteResult{Stdout: "relatório", ExitCode: 0},
	}
	svc := service.NewCoachService(store, host)

	got, err := svc.Execute(context.Background(), executeInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Stdout != "relatório" || got.ExitCode != 0 {
		t.Errorf("output = %+v", got)
	}
	if len(host.executed) != 1 {
		t.Fatalf("executed %d times", len(host.executed))
	}
	if host.executed[0].Context.StatePath != "/data/state.json" {
		t.Errorf("state path = %q", host.executed[0].Context.StatePath)
	}
}

func TestExecuteRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	m := manifestFor(binary, sum)
	m.Enabled = false
	svc := service.NewCoachService(&fakeManifestStore{manifests: []domain.Manifest{m}}, &fakeHost{})

	_, err := svc.Execute(context.Background(), executeInput())
	if !errors.Is(err, domain.ErrPluginDisabled) {
		t.Errorf("err = %v, want ErrPluginDisabled", err)
	}
}

func TestExecuteRejectsChecksumMismatch(t *testing.T) {
	t.Parallel()

	binary, _ := writeBinary(t)
	m := manifestFor(binary, hex.EncodeToString(make([]byte, 32)))
	svc := service.NewCoachService(&fakeManifestStore{manifests: []domain.Manifest{m}}, &fakeHost{})

	_, err := svc.Execute(context.Background(), executeInput())
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Errorf("err = %v, want ErrChecksumMismatch", err)
	}
}

func TestExecuteRejectsMissingCapability(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	m := manifestFor(binary, sum)
	m.Capabilities = []domain.Capability{domain.CapabilityAnalyze}
	svc := service.NewCoachService(&fakeManifestStore{manifests: []domain.Manifest{m}}, &fakeHost{})

	_, err := svc.Execute(context.Background(), executeInput())
	if !errors.Is(err, domain.ErrCapabilityMissing) {
		t.Errorf("err = %v, want ErrCapabilityMissing", err)
	}
}

func TestExecuteRejectsKindMismatch(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	host := &fakeHost{
		commands: []domain.CommandDescriptor{{ID: "weekly-report", Kind: domain.CommandKindAnalyze}},
	}
	svc := service.NewCoachService(store, host)

	if _, err := svc.Execute(context.Background(), executeInput()); err == nil {
		t.Error("report path ran an analyze command")
	}
}

func TestExecuteRejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	host := &fakeHost{commands: []domain.CommandDescriptor{{ID: "trend", Kind: domain.CommandKindReport}}}
	svc := service.NewCoachService(store, host)

	_, err := svc.Execute(context.Background(), executeInput())
	if !errors.Is(err, domain.ErrCommandNotFound) {
		t.Errorf("err = %v, want ErrCommandNotFound", err)
	}
}

func TestExecuteRejectsInvalidInputJSON(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	host := &fakeHost{commands: []domain.CommandDescriptor{{ID: "weekly-report", Kind: domain.CommandKindReport}}}
	svc := service.NewCoachService(store, host)

	input := executeInput()
	input.InputJSON = "{not json"
	if _, err := svc.Execute(context.Background(), input); err == nil {
		t.Error("malformed input-json accepted")
	}
	if len(host.executed) != 0 {
		t.Error("plugin ran despite malformed input")
	}
}

func TestAnalyzeRequiresAnalyzeKind(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	host := &fakeHost{
		commands: []domain.CommandDescriptor{{ID: "trend", Kind: domain.CommandKindAnalyze}},
		result:   domain.ExecuteResult{OutputJSON: `{"direction":"down"}`},
	}
	svc := service.NewCoachService(store, host)

	input := executeInput()
	input.CommandID = "trend"
	got, err := svc.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.OutputJSON != `{"direction":"down"}` {
		t.Errorf("output json = %q", got.OutputJSON)
	}
}

func TestExecuteRejectsSilentReport(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	host := &fakeHost{
		commands: []domain.CommandDescriptor{{ID: "weekly-report", Kind: domain.CommandKindReport}},
		result:   domain.ExecuteResult{Stdout: ""},
	}
	svc := service.NewCoachService(store, host)

	_, err := svc.Execute(context.Background(), executeInput())
	if !errors.Is(err, domain.ErrMalformedPluginOutput) {
		t.Errorf("err = %v, want ErrMalformedPluginOutput", err)
	}
}

func TestAnalyzeRejectsBrokenOutputJSON(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	host := &fakeHost{
		commands: []domain.CommandDescriptor{{ID: "trend", Kind: domain.CommandKindAnalyze}},
		result:   domain.ExecuteResult{OutputJSON: "{broken"},
	}
	svc := service.NewCoachService(store, host)

	input := executeInput()
	input.CommandID = "trend"
	_, err := svc.Analyze(context.Background(), input)
	if !errors.Is(err, domain.ErrMalformedPluginOutput) {
		t.Errorf("err = %v, want ErrMalformedPluginOutput", err)
	}
}

func TestListRejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum), manifestFor(binary, sum)}}
	svc := service.NewCoachService(store, &fakeHost{})

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("duplicate plugin names accepted")
	}
}

func TestDoctorReportsMissingBinary(t *testing.T) {
	t.Parallel()

	m := manifestFor(filepath.Join(t.TempDir(), "gone"), hex.EncodeToString(make([]byte, 32)))
	svc := service.NewCoachService(&fakeManifestStore{manifests: []domain.Manifest{m}}, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("Doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v", results)
	}
	if results[0].BinaryReachable || results[0].ChecksumValid || results[0].Error == "" {
		t.Errorf("result = %+v", results[0])
	}
}

func TestDoctorHealthyPlugin(t *testing.T) {
	t.Parallel()

	binary, sum := writeBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{manifestFor(binary, sum)}}
	svc := service.NewCoachService(store, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("Doctor: %v", err)
	}
	r := results[0]
	if !r.BinaryReachable || !r.ChecksumValid || !r.LifecycleOK || r.Error != "" {
		t.Errorf("result = %+v", r)
	}
}
