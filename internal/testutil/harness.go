package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/aoc2023/internal/app"
	"github.com/vk/aoc2023/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an application run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// WriteFiles creates a temporary directory holding the given files, keyed by
// slash-separated relative path, and returns its root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// RunApp builds an App with every compiled-in puzzle and the HCL loader,
// runs it, and captures its output and debug logs. Relative paths in cfg are
// resolved against root.
func RunApp(t *testing.T, root string, cfg app.Config) *HarnessResult {
	t.Helper()

	if cfg.ConfigPath != "" && !filepath.IsAbs(cfg.ConfigPath) {
		cfg.ConfigPath = filepath.Join(root, cfg.ConfigPath)
	}
	if cfg.InputPath != "" && !filepath.IsAbs(cfg.InputPath) {
		cfg.InputPath = filepath.Join(root, cfg.InputPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err}
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	testApp, err := app.NewApp(out, logs, appConfig, hcl.NewLoader())
	if err != nil {
		return &HarnessResult{LogOutput: logs.String(), Err: err}
	}

	runErr := testApp.Run(context.Background())
	if os.Getenv("AOC_TEST_LOGS") == "true" {
		t.Logf("--- APP LOGS ---\n%s", logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
	}
}
