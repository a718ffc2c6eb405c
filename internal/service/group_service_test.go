package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/store"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

func newGroupFixture() (*GroupService, *store.Store) {
	st := store.New()
	st.Seed()
	return NewGroupService(st, zap.NewNop()), st
}

func TestGroupServiceListResolvesSections(t *testing.T) {
	svc, _ := newGroupFixture()

	groups := svc.List(context.Background())
	require.Len(t, groups, 3)
	require.NotNil(t, groups[0].Section)
	assert.Equal(t, "Kinder", groups[0].Section.Name)
	assert.NotEmpty(t, groups[0].Schedule)
}

func TestGroupServiceListToleratesDanglingSection(t *testing.T) {
	svc, st := newGroupFixture()
	st.RemoveSection("sec_kin")

	groups := svc.List(context.Background())
	require.Len(t, groups, 3)
	assert.Nil(t, groups[0].Section, "removed section resolves to nil, not an error")
	assert.NotNil(t, groups[1].Section)
}

func TestGroupServiceGet(t *testing.T) {
	svc, _ := newGroupFixture()

	group, err := svc.Get(context.Background(), "g2")
	require.NoError(t, err)
	assert.Equal(t, "6º Primaria - B", group.Name)
	require.NotNil(t, group.Section)
	assert.Equal(t, "Primaria", group.Section.Name)

	_, err = svc.Get(context.Background(), "g99")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTeacherServiceList(t *testing.T) {
	st := store.New()
	st.Seed()
	svc := NewTeacherService(st, zap.NewNop())

	teachers := svc.List(context.Background())
	require.Len(t, teachers, 4)
	assert.Equal(t, "Dr. Roberto Sánchez", teachers[0].Name)
}
