// ABOUTME: Tests for the filesystem blob store.
// ABOUTME: Covers write/read round-trips, absent references, and reference uniqueness.
package store

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/developer-ongar/daytrack/internal/models"
)

func TestBlobWriteReadRoundtrip(t *testing.T) {
	b := NewBlobStore(filepath.Join(t.TempDir(), "icons"))

	owner := models.NewHabit("Run", "", 10)
	data := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}

	ref, err := b.Write(owner.Identity(), data)
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if ref == "" {
		t.Fatal("expected a non-empty reference")
	}

	got, ok := b.Read(ref)
	if !ok {
		t.Fatal("expected blob to be present")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("blob mismatch: got %v, want %v", got, data)
	}
}

func TestBlobReadEmptyReferenceIsAbsent(t *testing.T) {
	b := NewBlobStore(filepath.Join(t.TempDir(), "icons"))
	if _, ok := b.Read(""); ok {
		t.Error("expected empty reference to resolve absent")
	}
}

func TestBlobReadMissingReferenceIsAbsent(t *testing.T) {
	b := NewBlobStore(filepath.Join(t.TempDir(), "icons"))
	if _, ok := b.Read("habit-deadbeef"); ok {
		t.Error("expected unknown reference to resolve absent")
	}
}

func TestBlobRepeatedWritesYieldDistinctReferences(t *testing.T) {
	b := NewBlobStore(filepath.Join(t.TempDir(), "icons"))

	ref1, err := b.Write("owner", []byte("first"))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	ref2, err := b.Write("owner", []byte("second"))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}

	if ref1 == ref2 {
		t.Fatalf("expected distinct references, both were %s", ref1)
	}

	// The old blob is orphaned but still readable until something cleans it up.
	if got, ok := b.Read(ref1); !ok || string(got) != "first" {
		t.Errorf("expected first blob intact, got %q (present=%v)", got, ok)
	}
	if got, ok := b.Read(ref2); !ok || string(got) != "second" {
		t.Errorf("expected second blob intact, got %q (present=%v)", got, ok)
	}
}
