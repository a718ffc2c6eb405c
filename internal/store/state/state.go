// Package state persists the two durable pieces of panel state: the
// school configuration and the student roster. Attendance records stay
// session-only on purpose.
package state

import (
	"context"
	"errors"

	"github.com/edusuite/escolar-api/internal/models"
)

// ErrNoState signals that no usable snapshot exists. Callers fall back
// to the built-in seed dataset; an unparsable snapshot is treated the
// same as an absent one.
var ErrNoState = errors.New("no persisted state")

// Snapshot is the serialized shape of the durable state.
type Snapshot struct {
	Config   models.SchoolConfig `json:"config"`
	Students []models.Student    `json:"students"`
}

// Store loads and saves snapshots. Save is invoked after every student
// or configuration mutation.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Noop discards saves and never has state. Used for the memory backend.
type Noop struct{}

// Load always reports absence.
func (Noop) Load(context.Context) (*Snapshot, error) { return nil, ErrNoState }

// Save drops the snapshot.
func (Noop) Save(context.Context, *Snapshot) error { return nil }
