// Package store persists rendered diagrams so a server can hand a caller
// back a short ID instead of the whole render, and replay it later on
// request.
//
// # Architecture
//
// A render is identified by an opaque ID and carries the graph's content
// hash, the options it was rendered with, the rendered text itself, and a
// creation timestamp. The Store interface has two implementations:
//   - file: JSON-on-disk storage for single-process deployments
//   - mongo: MongoDB-backed storage for multi-instance deployments
//
// # Usage
//
//	st, err := store.NewFileStore("")  // ~/.config/asciidag/renders/
//	rec := store.New(graphHash, opts, output)
//	err = st.Set(ctx, rec)
//	got, err := st.Get(ctx, rec.ID)
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/asciidag/asciidag/pkg/printer"
)

// ErrNotFound is returned when a requested render does not exist.
var ErrNotFound = errors.New("store: not found")

// Render is a persisted rendering of a graph.
type Render struct {
	ID        string          `json:"id" bson:"id"`
	GraphHash string          `json:"graph_hash" bson:"graph_hash"`
	Options   printer.Options `json:"options" bson:"options"`
	Output    string          `json:"output" bson:"output"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// New creates a Render record with a freshly generated ID and the current
// time as its creation timestamp.
func New(graphHash string, opts printer.Options, output string) *Render {
	return &Render{
		ID:        uuid.NewString(),
		GraphHash: graphHash,
		Options:   opts,
		Output:    output,
		CreatedAt: time.Now(),
	}
}

// Store is the interface for render persistence backends.
type Store interface {
	// Get retrieves a render by ID. Returns ErrNotFound if it doesn't
	// exist.
	Get(ctx context.Context, id string) (*Render, error)

	// Set stores a render, keyed by its own ID.
	Set(ctx context.Context, r *Render) error

	// Delete removes a render. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
