package logwindow_test

import (
	"errors"
	"path/filepath"
	"testing"

	"logpage/internal/logwindow"
)

func TestNewRef(t *testing.T) {
	tests := []struct {
		name     string
		app      string
		executor string
		driver   string
		wantKind logwindow.Kind
		wantErr  bool
	}{
		{name: "executor pair", app: "app-1", executor: "3", wantKind: logwindow.KindExecutor},
		{name: "driver only", driver: "driver-20240101", wantKind: logwindow.KindDriver},
		{name: "both shapes", app: "app-1", executor: "3", driver: "driver-1", wantErr: true},
		{name: "nothing", wantErr: true},
		{name: "app without executor", app: "app-1", wantErr: true},
		{name: "executor without app", executor: "3", wantErr: true},
		{name: "driver with app", app: "app-1", driver: "driver-1", wantErr: true},
		{name: "whitespace only", app: " ", executor: " ", driver: "  ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := logwindow.NewRef(tt.app, tt.executor, tt.driver)
			if tt.wantErr {
				if !errors.Is(err, logwindow.ErrInvalidRequest) {
					t.Fatalf("expected ErrInvalidRequest, got %v", err)
				}
				if ref != nil {
					t.Fatalf("expected nil ref, got %#v", ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRef error: %v", err)
			}
			if ref.Kind() != tt.wantKind {
				t.Fatalf("kind = %v, want %v", ref.Kind(), tt.wantKind)
			}
		})
	}
}

func TestNewRefTrimsIdentifiers(t *testing.T) {
	ref, err := logwindow.NewRef(" app-1 ", "\t7", "")
	if err != nil {
		t.Fatalf("NewRef error: %v", err)
	}
	exec, ok := ref.(logwindow.ExecutorRef)
	if !ok {
		t.Fatalf("expected ExecutorRef, got %T", ref)
	}
	if exec.AppID != "app-1" || exec.ExecutorID != "7" {
		t.Fatalf("unexpected ids: %+v", exec)
	}
}

func TestResolve(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "var", "work")

	path, err := logwindow.Resolve(root, logwindow.ExecutorRef{AppID: "app-1", ExecutorID: "0"}, "stderr")
	if err != nil {
		t.Fatalf("Resolve executor: %v", err)
	}
	if want := filepath.Join(root, "app-1", "0", "stderr"); path != want {
		t.Fatalf("executor path = %q, want %q", path, want)
	}

	path, err = logwindow.Resolve(root, logwindow.DriverRef{DriverID: "driver-1"}, "stdout")
	if err != nil {
		t.Fatalf("Resolve driver: %v", err)
	}
	if want := filepath.Join(root, "driver-1", "stdout"); path != want {
		t.Fatalf("driver path = %q, want %q", path, want)
	}
}

func TestResolveRejectsEscapingComponents(t *testing.T) {
	root := t.TempDir()
	cases := []struct {
		name    string
		ref     logwindow.Ref
		logType string
	}{
		{"parent app", logwindow.ExecutorRef{AppID: "..", ExecutorID: "1"}, "stdout"},
		{"nested executor", logwindow.ExecutorRef{AppID: "app", ExecutorID: "1/../../etc"}, "stdout"},
		{"dot driver", logwindow.DriverRef{DriverID: "."}, "stdout"},
		{"log type with separator", logwindow.DriverRef{DriverID: "d"}, "../passwd"},
		{"empty log type", logwindow.DriverRef{DriverID: "d"}, ""},
		{"empty executor field", logwindow.ExecutorRef{AppID: "app"}, "stdout"},
		{"nil ref", nil, "stdout"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := logwindow.Resolve(root, tt.ref, tt.logType); !errors.Is(err, logwindow.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}
