package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/store"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

func newSectionFixture() (*SectionService, *store.Store) {
	st := store.New()
	st.Seed()
	return NewSectionService(st, validator.New(), zap.NewNop()), st
}

func TestSectionServiceListIncludesGroupCounts(t *testing.T) {
	svc, _ := newSectionFixture()

	sections := svc.List(context.Background())
	require.Len(t, sections, 4)
	assert.Equal(t, "Kinder", sections[0].Name)
	assert.Equal(t, 1, sections[0].GroupCount)
	assert.Equal(t, "Bachillerato", sections[3].Name)
	assert.Zero(t, sections[3].GroupCount)
}

func TestSectionServiceAdd(t *testing.T) {
	svc, st := newSectionFixture()

	section, err := svc.Add(context.Background(), AddSectionRequest{Name: "Preparatoria", Color: "amber"})
	require.NoError(t, err)
	assert.NotEmpty(t, section.ID)
	assert.Equal(t, "amber", section.Color)
	assert.Len(t, st.Sections(), 5)
}

func TestSectionServiceAddDefaultsColor(t *testing.T) {
	svc, _ := newSectionFixture()

	section, err := svc.Add(context.Background(), AddSectionRequest{Name: "Preparatoria"})
	require.NoError(t, err)
	assert.Equal(t, "indigo", section.Color)
}

func TestSectionServiceAddRequiresName(t *testing.T) {
	svc, st := newSectionFixture()

	_, err := svc.Add(context.Background(), AddSectionRequest{Color: "amber"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Len(t, st.Sections(), 4)
}

func TestSectionServiceRemove(t *testing.T) {
	svc, st := newSectionFixture()

	require.NoError(t, svc.Remove(context.Background(), "sec_bac"))
	assert.Len(t, st.Sections(), 3)

	err := svc.Remove(context.Background(), "sec_bac")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSectionServiceRemoveLeavesReferencingGroups(t *testing.T) {
	svc, st := newSectionFixture()

	require.NoError(t, svc.Remove(context.Background(), "sec_kin"))
	g, ok := st.FindGroup("g1")
	require.True(t, ok)
	assert.Equal(t, "sec_kin", g.SectionID)
}

func TestSectionServiceGroups(t *testing.T) {
	svc, _ := newSectionFixture()

	groups, err := svc.Groups(context.Background(), "sec_kin")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].ID)

	_, err = svc.Groups(context.Background(), "sec_unknown")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
