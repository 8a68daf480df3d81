package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	coachrpc "jejum/internal/modules/coach/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type stateFile struct {
	History []struct {
		StartTime   time.Time `json:"startTime"`
		ActualHours float64   `json:"actualDurationHours"`
		Completed   bool      `json:"completed"`
		WaterCount  int       `json:"waterCount"`
	} `json:"history"`
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *coachrpc.Empty) (*coachrpc.Metadata, error) {
	return &coachrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"report", "analyze"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *coachrpc.Empty) (*coachrpc.ListCommandsResponse, error) {
	return &coachrpc.ListCommandsResponse{Commands: []coachrpc.CommandDescriptor{
		{ID: "weekly-report", Title: "Weekly report", Description: "Summarizes the last 7 days of fasting", Kind: "report", TimeoutMS: 2500},
		{ID: "trend", Title: "Trend", Description: "Returns completion trend as JSON", Kind: "analyze", TimeoutMS: 2500},
	}}, nil
}

func (s *server) Execute(_ context.Context, in *coachrpc.ExecuteRequest) (*coachrpc.ExecuteResponse, error) {
	st, err := loadState(in.Context.StatePath)
	if err != nil {
		return &coachrpc.ExecuteResponse{Stderr: err.Error(), ExitCode: 1}, nil
	}
	switch in.CommandID {
	case "weekly-report":
		cutoff := time.Now().Add(-7 * 24 * time.Hour)
		total, completed, hours, water := 0, 0, 0.0, 0
		for _, h := range st.History {
			if h.StartTime.Before(cutoff) {
				continue
			}
			total++
			hours += h.ActualHours
			water += h.WaterCount
			if h.Completed {
				completed++
			}
		}
		out := fmt.Sprintf("last 7 days: %d fasts, %d completed, %.1fh fasted, %d cups of water\n", total, completed, hours, water)
		return &coachrpc.ExecuteResponse{Stdout: out, ExitCode: 0}, nil
	case "trend":
		completed := 0
		for _, h := range st.History {
			if h.Completed {
				completed++
			}
		}
		payload := map[string]any{
			"total_fasts":     len(st.History),
			"completed_fasts": completed,
		}
		raw, _ := json.Marshal(payload)
		return &coachrpc.ExecuteResponse{Stdout: "trend ready", OutputJSON: string(raw), ExitCode: 0}, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

func loadState(path string) (stateFile, error) {
	var st stateFile
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("read state: %w", err)
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return st, fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: coachrpc.HandshakeConfig,
		Plugins:         coachrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
