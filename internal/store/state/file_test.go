package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusuite/escolar-api/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	snap := &Snapshot{
		Config: models.SchoolConfig{
			SchoolName:   "Colegio Test",
			PrimaryColor: models.ThemeEmerald,
			WelcomeMsg:   "Bienvenidos",
		},
		Students: []models.Student{
			{ID: "st1", Name: "Ana Martínez", EnrollmentID: "K-001", GroupID: "g1", SectionID: "sec_kin", Status: models.StudentStatusActive},
		},
	}
	require.NoError(t, fs.Save(context.Background(), snap))

	loaded, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.Config, loaded.Config)
	assert.Equal(t, snap.Students, loaded.Students)
}

func TestFileStoreLoadMissingFilesYieldsErrNoState(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoState)
}

func TestFileStoreLoadCorruptFileYieldsErrNoState(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "students.json"), []byte("[]"), 0o644))

	_, err = fs.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoState)
}

func TestNoopStoreHasNoState(t *testing.T) {
	var n Noop

	_, err := n.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoState)
	assert.NoError(t, n.Save(context.Background(), &Snapshot{}))
}
