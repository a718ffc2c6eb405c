package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configFile   = "config.json"
	studentsFile = "students.json"
)

// FileStore keeps the snapshot as two JSON documents under a state
// directory, mirroring the two-key layout of the original storage area.
type FileStore struct {
	dir string
}

// NewFileStore ensures the state directory exists.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./state"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads both documents. A missing or unparsable file yields
// ErrNoState so the caller falls back to seed data.
func (s *FileStore) Load(_ context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	rawCfg, err := os.ReadFile(filepath.Join(s.dir, configFile))
	if err != nil {
		return nil, ErrNoState
	}
	if err := json.Unmarshal(rawCfg, &snap.Config); err != nil {
		return nil, ErrNoState
	}

	rawStudents, err := os.ReadFile(filepath.Join(s.dir, studentsFile))
	if err != nil {
		return nil, ErrNoState
	}
	if err := json.Unmarshal(rawStudents, &snap.Students); err != nil {
		return nil, ErrNoState
	}

	return snap, nil
}

// Save writes both documents.
func (s *FileStore) Save(_ context.Context, snap *Snapshot) error {
	rawCfg, err := json.MarshalIndent(snap.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config state: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, configFile), rawCfg, 0o644); err != nil {
		return fmt.Errorf("write config state: %w", err)
	}

	rawStudents, err := json.MarshalIndent(snap.Students, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal students state: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, studentsFile), rawStudents, 0o644); err != nil {
		return fmt.Errorf("write students state: %w", err)
	}

	return nil
}
