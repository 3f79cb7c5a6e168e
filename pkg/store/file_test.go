package store

import (
	"context"
	"errors"
	"testing"

	"github.com/asciidag/asciidag/pkg/printer"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	r := New("graphhash", printer.DefaultOptions(), "o\n")

	if err := s.Set(ctx, r); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Output != r.Output || got.GraphHash != r.GraphHash {
		t.Errorf("Get() = %+v, want %+v", got, r)
	}

	if err := s.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want %v", err, ErrNotFound)
	}
}

func TestFileStoreGetMissingReturnsErrNotFound(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer s.Close()

	if _, err := s.Get(context.Background(), "nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want %v", err, ErrNotFound)
	}
}

func TestNewGeneratesUniqueIDs(t *testing.T) {
	a := New("h", printer.DefaultOptions(), "o\n")
	b := New("h", printer.DefaultOptions(), "o\n")
	if a.ID == b.ID {
		t.Error("New() produced duplicate IDs")
	}
}
