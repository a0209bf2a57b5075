package logwindow_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"logpage/internal/logging"
	"logpage/internal/logwindow"
	"logpage/internal/testsupport"
)

func newService(t *testing.T, root string, limits logwindow.Limits) *logwindow.Service {
	t.Helper()
	svc, err := logwindow.NewService(root, limits, logging.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestGetLogWindowTailsExecutorLog(t *testing.T) {
	root := t.TempDir()
	content := testsupport.WriteLog(t, filepath.Join(root, "app-1", "0", "stdout"), 500000)
	svc := newService(t, root, testLimits)

	ref, err := logwindow.NewRef("app-1", "0", "")
	if err != nil {
		t.Fatalf("NewRef: %v", err)
	}
	w, links, err := svc.GetLogWindow(context.Background(), logwindow.Request{Ref: ref, LogType: "stdout"})
	if err != nil {
		t.Fatalf("GetLogWindow: %v", err)
	}
	if w.Start != 397600 || w.End != 500000 || w.Total != 500000 {
		t.Fatalf("unexpected window: start=%d end=%d total=%d", w.Start, w.End, w.Total)
	}
	if !bytes.Equal(w.Content, content[397600:]) {
		t.Fatal("window content does not match file tail")
	}
	if links.Next != nil {
		t.Fatalf("expected no next link at end of file, got %+v", *links.Next)
	}
	if links.Previous == nil || links.Previous.Offset != 397600-102400 || links.Previous.Length != 102400 {
		t.Fatalf("unexpected previous link: %+v", links.Previous)
	}
}

func TestGetLogWindowDriverOffsetAndLength(t *testing.T) {
	root := t.TempDir()
	content := testsupport.WriteLog(t, filepath.Join(root, "driver-7", "stderr"), 1000)
	svc := newService(t, root, testLimits)

	offset, length := int64(-50), int32(500)
	w, links, err := svc.GetLogWindow(context.Background(), logwindow.Request{
		Ref:     logwindow.DriverRef{DriverID: "driver-7"},
		LogType: "stderr",
		Offset:  &offset,
		Length:  &length,
	})
	if err != nil {
		t.Fatalf("GetLogWindow: %v", err)
	}
	if w.Start != 0 || w.End != 500 {
		t.Fatalf("unexpected range %d-%d", w.Start, w.End)
	}
	if !bytes.Equal(w.Content, content[:500]) {
		t.Fatal("unexpected content")
	}
	if links.Previous != nil {
		t.Fatal("expected no previous link at start")
	}
	if links.Next == nil || links.Next.Offset != 500 {
		t.Fatalf("unexpected next link: %+v", links.Next)
	}
}

func TestGetLogWindowOffsetPastEnd(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteLog(t, filepath.Join(root, "driver-7", "stdout"), 1000)
	svc := newService(t, root, testLimits)

	offset, length := int64(2000), int32(500)
	w, _, err := svc.GetLogWindow(context.Background(), logwindow.Request{
		Ref:     logwindow.DriverRef{DriverID: "driver-7"},
		LogType: "stdout",
		Offset:  &offset,
		Length:  &length,
	})
	if err != nil {
		t.Fatalf("GetLogWindow: %v", err)
	}
	if w.Start != 1000 || w.End != 1000 || len(w.Content) != 0 {
		t.Fatalf("expected empty window at end, got %d-%d (%d bytes)", w.Start, w.End, len(w.Content))
	}
}

func TestGetLogWindowCeiling(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteLog(t, filepath.Join(root, "d", "stdout"), 4096)
	svc := newService(t, root, logwindow.Limits{DefaultBytes: 512, MaxBytes: 1024})

	offset, length := int64(0), int32(1<<30)
	w, links, err := svc.GetLogWindow(context.Background(), logwindow.Request{
		Ref: logwindow.DriverRef{DriverID: "d"}, LogType: "stdout", Offset: &offset, Length: &length,
	})
	if err != nil {
		t.Fatalf("GetLogWindow: %v", err)
	}
	if w.Len() != 1024 {
		t.Fatalf("expected window capped at 1024 bytes, got %d", w.Len())
	}
	if links.Next == nil || links.Next.Length != 1024 {
		t.Fatalf("expected next link with clamped length, got %+v", links.Next)
	}
}

func TestGetLogWindowErrors(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "d", "stdout"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	svc := newService(t, root, testLimits)

	_, _, err := svc.GetLogWindow(context.Background(), logwindow.Request{
		Ref: logwindow.DriverRef{DriverID: "missing"}, LogType: "stdout",
	})
	if !errors.Is(err, logwindow.ErrNotFound) || !logwindow.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for missing log, got %v", err)
	}

	_, _, err = svc.GetLogWindow(context.Background(), logwindow.Request{
		Ref: logwindow.DriverRef{DriverID: "d"}, LogType: "stdout",
	})
	if !errors.Is(err, logwindow.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for directory, got %v", err)
	}

	_, _, err = svc.GetLogWindow(context.Background(), logwindow.Request{
		Ref: logwindow.DriverRef{DriverID: "d"}, LogType: " ",
	})
	if !logwindow.IsInvalidRequest(err) {
		t.Fatalf("expected ErrInvalidRequest for blank log type, got %v", err)
	}

	_, _, err = svc.GetLogWindow(context.Background(), logwindow.Request{LogType: "stdout"})
	if !logwindow.IsInvalidRequest(err) {
		t.Fatalf("expected ErrInvalidRequest for missing ref, got %v", err)
	}
}

func TestGetLogWindowCanceledContext(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteLog(t, filepath.Join(root, "d", "stdout"), 2048)
	svc := newService(t, root, testLimits)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := svc.GetLogWindow(ctx, logwindow.Request{Ref: logwindow.DriverRef{DriverID: "d"}, LogType: "stdout"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGetLogWindowConcurrentRequests(t *testing.T) {
	root := t.TempDir()
	content := testsupport.WriteLog(t, filepath.Join(root, "app", "1", "stdout"), 300000)
	svc := newService(t, root, logwindow.Limits{DefaultBytes: 1000, MaxBytes: 4000})

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			offset, length := int64(i*10000), int32(4000)
			w, _, err := svc.GetLogWindow(context.Background(), logwindow.Request{
				Ref: logwindow.ExecutorRef{AppID: "app", ExecutorID: "1"}, LogType: "stdout", Offset: &offset, Length: &length,
			})
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(w.Content, content[offset:offset+4000]) {
				errs <- errors.New("content mismatch")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent read: %v", err)
	}
}

func TestNewServiceValidates(t *testing.T) {
	if _, err := logwindow.NewService("", testLimits, nil); err == nil {
		t.Fatal("expected error for empty root")
	}
	if _, err := logwindow.NewService(t.TempDir(), logwindow.Limits{}, nil); err == nil {
		t.Fatal("expected error for zero limits")
	}
}
