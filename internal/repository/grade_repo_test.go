package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

func seedCompletion(t *testing.T, db *gorm.DB, userID, skillID uint) models.Completion {
	t.Helper()

	completion := models.Completion{UserID: userID, SkillID: skillID}
	require.NoError(t, db.Create(&completion).Error)
	return completion
}

func TestAchieveWithCompletionsLinksSpentRows(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGradeRepository(db)

	member := seedUser(t, db, "pal@pawsition.dev", models.RoleMember)
	section := seedSection(t, db, "Obedience")
	sit := seedSkill(t, db, section.ID, "Sit", 2)
	roll := seedSkill(t, db, section.ID, "Roll Over", 5)

	first := seedCompletion(t, db, member.ID, sit.ID)
	second := seedCompletion(t, db, member.ID, roll.ID)

	grade := models.Grade{UserID: member.ID, GradeNumber: 1, PointsRequired: 20, AchievedAt: time.Now().UTC()}
	require.NoError(t, repo.AchieveWithCompletions(ctx, &grade, []uint{first.ID, second.ID}))

	consumed, err := repo.ConsumedCompletionIDs(ctx, member.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, consumed)

	last, err := repo.LastGradeNumber(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, last)
}

func TestAchieveRollsBackWhenCompletionAlreadySpent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGradeRepository(db)

	member := seedUser(t, db, "pal@pawsition.dev", models.RoleMember)
	section := seedSection(t, db, "Obedience")
	sit := seedSkill(t, db, section.ID, "Sit", 2)
	completion := seedCompletion(t, db, member.ID, sit.ID)

	grade := models.Grade{UserID: member.ID, GradeNumber: 1, PointsRequired: 20, AchievedAt: time.Now().UTC()}
	require.NoError(t, repo.AchieveWithCompletions(ctx, &grade, []uint{completion.ID}))

	// Spending the same completion on grade 2 violates the unique link index
	// and must leave no grade 2 row behind.
	next := models.Grade{UserID: member.ID, GradeNumber: 2, PointsRequired: 20, AchievedAt: time.Now().UTC()}
	err := repo.AchieveWithCompletions(ctx, &next, []uint{completion.ID})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Grade{}).Where("user_id = ?", member.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAchieveRejectsDuplicateGradeNumber(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGradeRepository(db)

	member := seedUser(t, db, "pal@pawsition.dev", models.RoleMember)
	section := seedSection(t, db, "Obedience")
	sit := seedSkill(t, db, section.ID, "Sit", 2)
	roll := seedSkill(t, db, section.ID, "Roll Over", 5)
	first := seedCompletion(t, db, member.ID, sit.ID)
	second := seedCompletion(t, db, member.ID, roll.ID)

	grade := models.Grade{UserID: member.ID, GradeNumber: 1, PointsRequired: 20, AchievedAt: time.Now().UTC()}
	require.NoError(t, repo.AchieveWithCompletions(ctx, &grade, []uint{first.ID}))

	duplicate := models.Grade{UserID: member.ID, GradeNumber: 1, PointsRequired: 20, AchievedAt: time.Now().UTC()}
	err := repo.AchieveWithCompletions(ctx, &duplicate, []uint{second.ID})
	assert.Error(t, err)
}

func TestLastGradeNumberWithoutGrades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGradeRepository(db)

	member := seedUser(t, db, "pal@pawsition.dev", models.RoleMember)

	last, err := repo.LastGradeNumber(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, last)
}
