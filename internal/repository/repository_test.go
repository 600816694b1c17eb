package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawsition/pawsition-api/internal/models"
)

// setupTestDB opens a per-test in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Class{},
		&models.Section{},
		&models.Skill{},
		&models.Submission{},
		&models.Completion{},
		&models.Grade{},
		&models.GradeCompletion{},
		&models.Certificate{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		Username:     strings.SplitN(email, "@", 2)[0],
		PasswordHash: "x",
		Role:         role,
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedSkill(t *testing.T, db *gorm.DB, sectionID uint, title string, points int) models.Skill {
	t.Helper()

	skill := models.Skill{
		SectionID:  sectionID,
		Title:      title,
		Difficulty: 1,
		Points:     points,
		Active:     true,
	}
	require.NoError(t, db.Create(&skill).Error)
	return skill
}

func seedSection(t *testing.T, db *gorm.DB, name string) models.Section {
	t.Helper()

	section := models.Section{Name: name, Active: true}
	require.NoError(t, db.Create(&section).Error)
	return section
}
