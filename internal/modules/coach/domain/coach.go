package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Capability gates what a coach plugin may be asked to do. Reports read the
// fasting history and render text; analyses return structured JSON.
type Capability string

const (
	CapabilityReport  Capability = "report"
	CapabilityAnalyze Capability = "analyze"
)

var (
	ErrPluginDisabled    = errors.New("plugin is disabled")
	ErrChecksumMismatch  = errors.New("plugin checksum mismatch")
	ErrCapabilityMissing = errors.New("plugin capability missing")
	ErrCommandNotFound   = errors.New("plugin command not found")
	ErrPluginTimeout     = errors.New("plugin timeout")

	ErrMalformedPluginOutput = errors.New("malformed plugin output")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("plugin capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityReport, CapabilityAnalyze:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

// Kind is the command kind a capability authorizes. Reports render text for
// a person; analyses return structured JSON for further processing.
func (c Capability) Kind() CommandKind {
	if c == CapabilityAnalyze {
		return CommandKindAnalyze
	}
	return CommandKindReport
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type CommandKind string

const (
	CommandKindReport  CommandKind = "report"
	CommandKindAnalyze CommandKind = "analyze"
)

func (k CommandKind) Validate() error {
	switch k {
	case CommandKindReport, CommandKindAnalyze:
		return nil
	default:
		return fmt.Errorf("unknown command kind: %s", k)
	}
}

type CommandDescriptor struct {
	ID              string
	Title           string
	Description     string
	Kind            CommandKind
	InputSchemaJSON string
	TimeoutMS       int
}

func (d CommandDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("command id is required")
	}
	return d.Kind.Validate()
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// ExecuteContext tells the plugin where the local data lives. Plugins read
// the state file directly; they never write it.
type ExecuteContext struct {
	DataDir   string
	StatePath string
	Env       map[string]string
}

func (c ExecuteContext) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir is required")
	}
	if c.StatePath == "" {
		return fmt.Errorf("state path is required")
	}
	return nil
}

type ExecuteRequest struct {
	CommandID string
	InputJSON string
	Context   ExecuteContext
}

func (r ExecuteRequest) Validate() error {
	if r.CommandID == "" {
		return fmt.Errorf("command id is required")
	}
	return r.Context.Validate()
}

type ExecuteResult struct {
	Stdout     string
	Stderr     string
	OutputJSON string
	ExitCode   int
}

// ValidateFor checks the result against the contract of the command kind: a
// report must produce human-readable text, an analysis must produce valid
// JSON. Failed runs are exempt; the caller surfaces stderr and the exit
// code instead.
func (r ExecuteResult) ValidateFor(kind CommandKind) error {
	if r.ExitCode != 0 {
		return nil
	}
	switch kind {
	case CommandKindAnalyze:
		if !json.Valid([]byte(r.OutputJSON)) {
			return fmt.Errorf("%w: analysis output is not valid JSON", ErrMalformedPluginOutput)
		}
	case CommandKindReport:
		if strings.TrimSpace(r.Stdout) == "" {
			return fmt.Errorf("%w: report produced no text", ErrMalformedPluginOutput)
		}
	}
	return nil
}
