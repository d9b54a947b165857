package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveWritesBlob(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads", time.Minute)
	if err != nil {
		t.Fatalf("NewDiskStore() error: %v", err)
	}

	att, err := store.Save("cat.png", "image/png", strings.NewReader("pngbytes"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if att.OriginalName != "cat.png" || att.MimeType != "image/png" {
		t.Errorf("descriptor = %+v", att)
	}
	if att.Size != int64(len("pngbytes")) {
		t.Errorf("Size = %d, want %d", att.Size, len("pngbytes"))
	}
	if filepath.Ext(att.Filename) != ".png" {
		t.Errorf("stored name %q lost the extension", att.Filename)
	}
	if att.Path != "/uploads/"+att.Filename {
		t.Errorf("Path = %q, want prefix + filename", att.Path)
	}

	data, err := os.ReadFile(filepath.Join(store.dir, att.Filename))
	if err != nil {
		t.Fatalf("stored blob unreadable: %v", err)
	}
	if string(data) != "pngbytes" {
		t.Errorf("stored bytes = %q", data)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broke")
}

// A failed save must never leave a partial blob behind, and never
// return a descriptor for one.
func TestSaveFailedWriteCleansUp(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Save("cat.png", "image/png", failingReader{}); err == nil {
		t.Fatal("Save() returned nil error for a broken stream")
	}

	entries, err := os.ReadDir(store.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("partial blob left behind: %v", entries)
	}
}

func TestScheduleDeleteRemovesBlob(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads", 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	att, err := store.Save("doc.txt", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}

	store.ScheduleDelete(att.Filename)

	path := filepath.Join(store.dir, att.Filename)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("blob still present after retention window")
}

func TestCancelDeleteKeepsBlob(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads", 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	att, err := store.Save("doc.txt", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}

	store.ScheduleDelete(att.Filename)
	if !store.CancelDelete(att.Filename) {
		t.Fatal("CancelDelete() = false for a pending timer")
	}

	time.Sleep(100 * time.Millisecond)
	if _, err := os.Stat(filepath.Join(store.dir, att.Filename)); err != nil {
		t.Errorf("blob removed despite cancellation: %v", err)
	}

	if store.CancelDelete(att.Filename) {
		t.Error("CancelDelete() = true for an already-cancelled timer")
	}
}

func TestCancelDeleteUnknownBlob(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if store.CancelDelete("nope.bin") {
		t.Error("CancelDelete() = true for an unknown blob")
	}
}
