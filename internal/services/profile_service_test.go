package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"folio_backend/internal/models"
	"folio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	svc        ProfileService
	users      *fakeUserRepo
	social     *fakeSocialRepo
	skills     *fakeCollectionRepo[models.Skill]
	experience *fakeCollectionRepo[models.ExperienceItem]
	education  *fakeCollectionRepo[models.EducationItem]
	portfolio  *fakeCollectionRepo[models.PortfolioItem]
	owner      *models.User
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	owner := &models.User{
		Email:                 "jane@example.com",
		Username:              "jane.doe",
		DisplayName:           "Jane Doe",
		Profession:            "Photographer",
		SkillsSectionName:     "Skills",
		ExperienceSectionName: "Experience",
		EducationSectionName:  "Education",
		ProjectsSectionName:   "Projects",
	}

	f := &profileFixture{
		users:      newFakeUserRepo(owner),
		social:     newFakeSocialRepo(),
		skills:     newFakeCollectionRepo[models.Skill](nil),
		experience: newFakeCollectionRepo[models.ExperienceItem](applyTimelineUpdates[models.ExperienceItem]),
		education:  newFakeCollectionRepo[models.EducationItem](applyTimelineUpdates[models.EducationItem]),
		portfolio:  newFakeCollectionRepo[models.PortfolioItem](applyPortfolioUpdates),
		owner:      owner,
	}
	f.svc = NewProfileService(f.users, f.social, f.skills, f.experience, f.education, f.portfolio)
	return f
}

func TestProfileService_UnknownUsernameIsNotFound(t *testing.T) {
	t.Parallel()
	f := newProfileFixture(t)

	_, err := f.svc.GetPublicProfile(context.Background(), nil, "nobody")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestProfileService_AggregatesAllCollections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newProfileFixture(t)

	skill := models.Skill{UserID: f.owner.ID, Name: "Lightroom"}
	require.NoError(t, f.skills.Create(nil, &skill))
	exp := models.ExperienceItem{UserID: f.owner.ID, Title: "Studio assistant"}
	require.NoError(t, f.experience.Create(nil, &exp))
	require.NoError(t, f.social.ReplaceAll(nil, f.owner.ID, []models.SocialLink{
		{UserID: f.owner.ID, Platform: "instagram", URL: "https://instagram.com/janedoe"},
	}))

	profile, err := f.svc.GetPublicProfile(ctx, nil, "jane.doe")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.DisplayName)
	assert.Equal(t, "Skills", profile.SectionNames.Skills)
	require.Len(t, profile.Skills, 1)
	assert.Equal(t, "Lightroom", profile.Skills[0].Name)
	require.Len(t, profile.ExperienceItems, 1)
	require.Len(t, profile.SocialLinks, 1)
	assert.Empty(t, profile.EducationItems)
	assert.NotNil(t, profile.PortfolioItems)
}

func TestProfileService_CollectionFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()
	f := newProfileFixture(t)

	skill := models.Skill{UserID: f.owner.ID, Name: "Go"}
	require.NoError(t, f.skills.Create(nil, &skill))
	f.skills.failList = errors.New("connection lost")

	profile, err := f.svc.GetPublicProfile(context.Background(), nil, "jane.doe")
	require.NoError(t, err, "a collection failure must not fail the whole read")
	assert.Empty(t, profile.Skills)
	assert.Equal(t, "jane.doe", profile.Username)
}
