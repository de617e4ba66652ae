package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// writeSyntheticFile creates a file at path within root, creating parent
// directories as needed.
func writeSyntheticFile(t *testing.T, root, path, content string) {
	t.Helper()
	fullPath := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", fullPath, err)
	}
}

// observedDiagnostics returns a sink whose warnings can be inspected.
func observedDiagnostics() (Diagnostics, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewDiagnostics(zap.New(core)), logs
}

func badMessages(logs *observer.ObservedLogs) int {
	return logs.FilterMessageSnippet(BadPrefix).Len()
}

// fakeRunner answers commands from canned output keyed by command line.
// Commands without an entry exit non-zero with no output.
type fakeRunner struct {
	outputs   map[string]string
	launchErr error
	calls     []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := commandLine(name, args...)
	f.calls = append(f.calls, line)

	if f.launchErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCommandLaunch, name, f.launchErr)
	}
	output, ok := f.outputs[line]
	if !ok {
		return nil, fmt.Errorf("%s exited with status 1", name)
	}
	return []byte(output), nil
}
