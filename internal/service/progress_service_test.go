package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsition/pawsition-api/internal/models"
)

func completionWith(id, skillID, sectionID uint, points int) models.Completion {
	return models.Completion{
		ID:      id,
		UserID:  1,
		SkillID: skillID,
		Skill:   models.Skill{ID: skillID, SectionID: sectionID, Points: points, Active: true},
	}
}

func TestComputeProgressZeroState(t *testing.T) {
	result := ComputeProgress(0, nil, nil)

	assert.Equal(t, 0, result.CurrentGrade)
	require.NotNil(t, result.NextGrade)
	assert.Equal(t, 1, *result.NextGrade)
	assert.Equal(t, 0, result.TotalPoints)
	assert.Equal(t, 20, result.PointsRequired)
	assert.Equal(t, 0, result.SectionsWithSkills)
	assert.False(t, result.Eligible)
}

func TestComputeProgressEligibility(t *testing.T) {
	completions := []models.Completion{
		completionWith(1, 10, 1, 10),
		completionWith(2, 11, 1, 5),
		completionWith(3, 20, 2, 5),
		completionWith(4, 21, 2, 2),
	}

	result := ComputeProgress(0, completions, nil)

	assert.Equal(t, 22, result.TotalPoints)
	assert.Equal(t, 2, result.SectionsWithSkills)
	assert.Equal(t, 20, result.PointsRequired)
	assert.True(t, result.Eligible)
	assert.Len(t, result.Completions, 4)
}

func TestComputeProgressExcludesConsumedCompletions(t *testing.T) {
	completions := []models.Completion{
		completionWith(1, 10, 1, 15),
		completionWith(2, 11, 1, 10),
		completionWith(3, 20, 2, 5),
	}

	result := ComputeProgress(1, completions, []uint{1, 2})

	assert.Equal(t, 1, result.CurrentGrade)
	require.NotNil(t, result.NextGrade)
	assert.Equal(t, 2, *result.NextGrade)
	assert.Equal(t, 5, result.TotalPoints)
	assert.Equal(t, 1, result.SectionsWithSkills)
	assert.False(t, result.Eligible)
	assert.Len(t, result.Completions, 1)
}

func TestComputeProgressPointSchedule(t *testing.T) {
	cases := []struct {
		lastGrade int
		required  int
	}{
		{0, 20},
		{2, 20},
		{3, 40},
		{5, 40},
		{6, 60},
		{8, 60},
		{9, 80},
		{11, 80},
	}

	for _, tc := range cases {
		result := ComputeProgress(tc.lastGrade, nil, nil)
		require.NotNil(t, result.NextGrade)
		assert.Equal(t, tc.lastGrade+1, *result.NextGrade)
		assert.Equal(t, tc.required, result.PointsRequired)
	}
}

func TestComputeProgressStopsAtGradeTwelve(t *testing.T) {
	completions := []models.Completion{completionWith(1, 10, 1, 15)}

	result := ComputeProgress(12, completions, nil)

	assert.Equal(t, 12, result.CurrentGrade)
	assert.Nil(t, result.NextGrade)
	assert.Equal(t, 0, result.PointsRequired)
	assert.False(t, result.Eligible)
	assert.Equal(t, 15, result.TotalPoints)
}

func TestProgressServiceUserNotFound(t *testing.T) {
	svc := NewProgressService(newFakeCompletionRepo(), newFakeGradeRepo(), newFakeUserRepo(), nil, 0, testLogger())

	_, err := svc.Progress(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProgressServiceComputesFromLedger(t *testing.T) {
	users := newFakeUserRepo(models.User{ID: 1, Email: "pal@pawsition.dev", Role: models.RoleMember, Active: true})
	completions := newFakeCompletionRepo(
		completionWith(1, 10, 1, 15),
		completionWith(2, 11, 2, 10),
	)
	grades := newFakeGradeRepo()

	svc := NewProgressService(completions, grades, users, nil, 0, testLogger())

	result, err := svc.Progress(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, result.CurrentGrade)
	assert.Equal(t, 25, result.TotalPoints)
	assert.Equal(t, 2, result.SectionsWithSkills)
	assert.True(t, result.Eligible)
}

func TestProgressServiceCachesResponse(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	users := newFakeUserRepo(models.User{ID: 1, Email: "pal@pawsition.dev", Role: models.RoleMember, Active: true})
	completions := newFakeCompletionRepo(completionWith(1, 10, 1, 15))
	grades := newFakeGradeRepo()

	svc := NewProgressService(completions, grades, users, cache, time.Minute, testLogger())

	first, err := svc.Progress(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 15, first.TotalPoints)

	// A new completion is invisible until the cache entry expires.
	completions.add(completionWith(2, 11, 2, 10))

	cached, err := svc.Progress(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 15, cached.TotalPoints)

	mr.FastForward(2 * time.Minute)

	fresh, err := svc.Progress(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 25, fresh.TotalPoints)
}
