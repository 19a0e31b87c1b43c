package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/policy"
)

const (
	studentAlice = "11111111-1111-4111-8111-111111111111"
	studentBob   = "22222222-2222-4222-8222-222222222222"
	teacherEve   = "33333333-3333-4333-8333-333333333333"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one named in-memory database per test keeps pooled connections on the
	// same schema without leaking rows between tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ProgressRecord{}, &models.ClassroomRecord{}))
	return db
}

func seedProgress(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.ProgressRecord{UserID: studentAlice, ProgressPercent: 40}).Error)
	require.NoError(t, db.Create(&models.ProgressRecord{UserID: studentBob, ProgressPercent: 55}).Error)
}

func TestProgressRepositoryListForStudentSeesOnlyOwnRows(t *testing.T) {
	db := setupTestDB(t)
	seedProgress(t, db)
	repo := NewProgressRepository(db)

	records, err := repo.ListFor(context.Background(), policy.Identity{ID: studentAlice, Role: "student"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, studentAlice, records[0].UserID)
}

func TestProgressRepositoryListForTeacherSeesAllRows(t *testing.T) {
	db := setupTestDB(t)
	seedProgress(t, db)
	repo := NewProgressRepository(db)

	records, err := repo.ListFor(context.Background(), policy.Identity{ID: teacherEve, Role: "teacher"})
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestProgressRepositoryTeacherUpdate(t *testing.T) {
	db := setupTestDB(t)
	seedProgress(t, db)
	repo := NewProgressRepository(db)

	updated, err := repo.UpdateByOwner(context.Background(), policy.Identity{ID: teacherEve, Role: "teacher"}, studentAlice, 76)
	require.NoError(t, err)
	require.Equal(t, 76, updated.ProgressPercent)
	require.Equal(t, studentAlice, updated.UserID)
}

func TestProgressRepositoryStudentUpdateDenied(t *testing.T) {
	db := setupTestDB(t)
	seedProgress(t, db)
	repo := NewProgressRepository(db)

	_, err := repo.UpdateByOwner(context.Background(), policy.Identity{ID: studentAlice, Role: "student"}, studentBob, 85)
	require.ErrorIs(t, err, ErrPolicyDenied)

	// the denied write must leave the row untouched
	var record models.ProgressRecord
	require.NoError(t, db.Where("user_id = ?", studentBob).First(&record).Error)
	require.Equal(t, 55, record.ProgressPercent)
}

func TestProgressRepositoryUpdateUnknownStudent(t *testing.T) {
	db := setupTestDB(t)
	seedProgress(t, db)
	repo := NewProgressRepository(db)

	_, err := repo.UpdateByOwner(context.Background(), policy.Identity{ID: teacherEve, Role: "teacher"}, "44444444-4444-4444-8444-444444444444", 90)
	require.ErrorIs(t, err, ErrNoRowsUpdated)
}
