package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/models"
)

type completionFixture struct {
	svc         CompletionService
	completions *fakeCompletionRepo
	classes     *fakeClassRepo
}

func newCompletionFixture() completionFixture {
	users := newFakeUserRepo(
		models.User{ID: 1, Email: "pal@pawsition.dev", Role: models.RoleMember, Active: true},
		models.User{ID: 2, Email: "trainer@pawsition.dev", Role: models.RoleTrainer, Active: true},
	)
	skills := newFakeSkillRepo(
		models.Skill{ID: 10, SectionID: 1, Title: "Sit", Points: 2, Active: true},
		models.Skill{ID: 11, SectionID: 1, Title: "Roll Over", Points: 5, Active: true},
		models.Skill{ID: 12, SectionID: 2, Title: "Fetch", Points: 10, Active: true},
		models.Skill{ID: 13, SectionID: 2, Title: "Retired Trick", Points: 5, Active: false},
	)
	completions := newFakeCompletionRepo()
	classes := newFakeClassRepo()
	classes.membersByTrainer[2] = []uint{1}

	svc := NewCompletionService(completions, skills, users, classes, validator.New(), testLogger())

	return completionFixture{svc: svc, completions: completions, classes: classes}
}

func TestBulkApproveGrantsEverythingInOneBatch(t *testing.T) {
	fx := newCompletionFixture()
	trainer := Actor{ID: 2, Role: models.RoleTrainer}

	result, err := fx.svc.BulkApprove(context.Background(), dto.BulkApproveRequest{
		UserID:   1,
		SkillIDs: []uint{10, 11, 12},
		Notes:    "group class graduation",
	}, trainer)
	require.NoError(t, err)

	assert.Equal(t, 3, result.ApprovedCount)
	assert.Equal(t, 17, result.TotalPoints)
	assert.Equal(t, []string{"Sit", "Roll Over", "Fetch"}, result.Skills)
	assert.Equal(t, 1, fx.completions.grantCalls)
	assert.Len(t, fx.completions.lastGrants, 3)
}

func TestBulkApproveSkipsCompletedAndUnknownSkills(t *testing.T) {
	fx := newCompletionFixture()
	trainer := Actor{ID: 2, Role: models.RoleTrainer}
	fx.completions.add(models.Completion{UserID: 1, SkillID: 10, Skill: models.Skill{ID: 10, SectionID: 1, Points: 2}})

	result, err := fx.svc.BulkApprove(context.Background(), dto.BulkApproveRequest{
		UserID:   1,
		SkillIDs: []uint{10, 11, 13, 99},
	}, trainer)
	require.NoError(t, err)

	// 10 already completed, 13 inactive, 99 unknown: only 11 survives.
	assert.Equal(t, 1, result.ApprovedCount)
	assert.Equal(t, 5, result.TotalPoints)
	assert.Equal(t, []string{"Roll Over"}, result.Skills)
}

func TestBulkApproveNothingToGrant(t *testing.T) {
	fx := newCompletionFixture()
	trainer := Actor{ID: 2, Role: models.RoleTrainer}
	fx.completions.add(models.Completion{UserID: 1, SkillID: 10})

	result, err := fx.svc.BulkApprove(context.Background(), dto.BulkApproveRequest{
		UserID:   1,
		SkillIDs: []uint{10},
	}, trainer)
	require.NoError(t, err)

	assert.Equal(t, 0, result.ApprovedCount)
	assert.Equal(t, 0, result.TotalPoints)
	assert.Empty(t, result.Skills)
	assert.Equal(t, 0, fx.completions.grantCalls)
}

func TestBulkApproveRejectsForeignMembers(t *testing.T) {
	fx := newCompletionFixture()
	stranger := Actor{ID: 7, Role: models.RoleTrainer}

	_, err := fx.svc.BulkApprove(context.Background(), dto.BulkApproveRequest{
		UserID:   1,
		SkillIDs: []uint{10},
	}, stranger)

	assert.ErrorIs(t, err, ErrOutsideTrainerClasses)
}

func TestBulkApproveUnknownUser(t *testing.T) {
	fx := newCompletionFixture()
	admin := Actor{ID: 8, Role: models.RoleAdmin}

	_, err := fx.svc.BulkApprove(context.Background(), dto.BulkApproveRequest{
		UserID:   99,
		SkillIDs: []uint{10},
	}, admin)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAllTimeStatsIgnoresGradeConsumption(t *testing.T) {
	fx := newCompletionFixture()
	fx.completions.add(completionWith(1, 10, 1, 2))
	fx.completions.add(completionWith(2, 11, 1, 5))
	fx.completions.add(completionWith(3, 12, 2, 10))

	stats, err := fx.svc.AllTimeStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 17, stats.TotalPoints)
	assert.Equal(t, 3, stats.TotalSkills)
	assert.Equal(t, map[uint]int{1: 2, 2: 1}, stats.SectionCounts)
}
