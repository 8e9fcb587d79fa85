package services

import (
	"context"
	"net/http"
	"testing"

	"folio_backend/internal/models"
	"folio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
)

func TestCollectionService_CreateEnforcesCap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeCollectionRepo[models.Skill](nil)
	svc := NewCollectionService[models.Skill](repo, 2)

	for _, name := range []string{"Go", "SQL"} {
		_, err := svc.Create(ctx, nil, ownerA, &models.Skill{UserID: ownerA, Name: name})
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, nil, ownerA, &models.Skill{UserID: ownerA, Name: "Docker"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCollectionLimit)

	// The cap is per owner, not global.
	_, err = svc.Create(ctx, nil, ownerB, &models.Skill{UserID: ownerB, Name: "Go"})
	assert.NoError(t, err)
}

func TestCollectionService_ListReturnsEmptySliceNotNil(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo[models.Skill](nil)
	svc := NewCollectionService[models.Skill](repo, 8)

	items, err := svc.List(context.Background(), nil, ownerA)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollectionService_UpdateScopedToOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeCollectionRepo[models.ExperienceItem](applyTimelineUpdates[models.ExperienceItem])
	svc := NewCollectionService[models.ExperienceItem](repo, 4)

	created, err := svc.Create(ctx, nil, ownerA, &models.ExperienceItem{UserID: ownerA, Title: "Backend engineer"})
	require.NoError(t, err)

	// Another account trying to patch the row sees a 404, not a 403.
	_, err = svc.Update(ctx, nil, (*created).ID, ownerB, map[string]interface{}{"title": "stolen"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	updated, err := svc.Update(ctx, nil, (*created).ID, ownerA, map[string]interface{}{"title": "Staff engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Staff engineer", (*updated).Title)
}

func TestCollectionService_UpdateRejectsEmptyPatch(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo[models.ExperienceItem](applyTimelineUpdates[models.ExperienceItem])
	svc := NewCollectionService[models.ExperienceItem](repo, 4)

	_, err := svc.Update(context.Background(), nil, "some-id", ownerA, map[string]interface{}{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestCollectionService_DeleteScopedToOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeCollectionRepo[models.EducationItem](applyTimelineUpdates[models.EducationItem])
	svc := NewCollectionService[models.EducationItem](repo, 4)

	created, err := svc.Create(ctx, nil, ownerA, &models.EducationItem{UserID: ownerA, Title: "CS degree"})
	require.NoError(t, err)

	err = svc.Delete(ctx, nil, (*created).ID, ownerB)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	require.NoError(t, svc.Delete(ctx, nil, (*created).ID, ownerA))

	items, err := svc.List(ctx, nil, ownerA)
	require.NoError(t, err)
	assert.Empty(t, items)
}
