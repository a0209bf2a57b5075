package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logpage/internal/config"
	"logpage/internal/logging"
	"logpage/internal/logwindow"
	"logpage/internal/server"
)

type cliTestEnv struct {
	configPath string
	logRoot    string
	stateDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("LOGPAGE_API_TOKEN", "")

	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		logRoot:    filepath.Join(base, "work"),
		stateDir:   filepath.Join(base, "state"),
	}
	if err := os.MkdirAll(env.logRoot, 0o755); err != nil {
		t.Fatalf("mkdir log root: %v", err)
	}
	env.writeConfig(t, "127.0.0.1:0")
	return env
}

func (env *cliTestEnv) writeConfig(t *testing.T, bind string) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
log_root = %q
state_dir = %q

[server]
bind = %q

[window]
default_bytes = 100
max_bytes = 400

[logging]
level = "error"
file = false
`, env.logRoot, env.stateDir, bind)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// startServer runs a server for env and returns its address.
func (env *cliTestEnv) startServer(t *testing.T) string {
	t.Helper()

	cfg, _, _, err := config.Load(env.configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	svc, err := logwindow.NewService(cfg.Paths.LogRoot, windowLimits(cfg), logging.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	srv, err := server.New(cfg, svc, logging.NewNop())
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := srv.Start(ctx); err != nil {
		cancel()
		t.Fatalf("server start: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		srv.Stop()
	})
	return srv.Addr()
}

func runCLI(t *testing.T, args []string, configPath, serverAddr string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	if serverAddr != "" {
		flags = append(flags, "--server", serverAddr)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
