package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/policy"
)

func seedClassrooms(t *testing.T, db *gorm.DB) (aliceRoom, bobRoom models.ClassroomRecord) {
	t.Helper()
	aliceRoom = models.ClassroomRecord{UserID: studentAlice, ClassName: "Chemistry", Grade: 6}
	bobRoom = models.ClassroomRecord{UserID: studentBob, ClassName: "Physics", Grade: 8}
	require.NoError(t, db.Create(&aliceRoom).Error)
	require.NoError(t, db.Create(&bobRoom).Error)
	return aliceRoom, bobRoom
}

func TestClassroomRepositoryListForStudent(t *testing.T) {
	db := setupTestDB(t)
	seedClassrooms(t, db)
	repo := NewClassroomRepository(db)

	records, err := repo.ListFor(context.Background(), policy.Identity{ID: studentBob, Role: "student"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Physics", records[0].ClassName)
}

func TestClassroomRepositoryTeacherUpdate(t *testing.T) {
	db := setupTestDB(t)
	aliceRoom, _ := seedClassrooms(t, db)
	repo := NewClassroomRepository(db)

	grade := 7
	name := "Chemistry Hons"
	updated, err := repo.Update(context.Background(), policy.Identity{ID: teacherEve, Role: "teacher"},
		aliceRoom.ID, studentAlice, ClassroomChanges{Grade: &grade, ClassName: &name})
	require.NoError(t, err)
	require.Equal(t, 7, updated.Grade)
	require.Equal(t, "Chemistry Hons", updated.ClassName)
}

func TestClassroomRepositoryPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	aliceRoom, _ := seedClassrooms(t, db)
	repo := NewClassroomRepository(db)

	grade := 9
	updated, err := repo.Update(context.Background(), policy.Identity{ID: teacherEve, Role: "teacher"},
		aliceRoom.ID, studentAlice, ClassroomChanges{Grade: &grade})
	require.NoError(t, err)
	require.Equal(t, 9, updated.Grade)
	require.Equal(t, "Chemistry", updated.ClassName, "unset field must remain untouched")
}

func TestClassroomRepositoryMismatchedOwnerMatchesNothing(t *testing.T) {
	db := setupTestDB(t)
	aliceRoom, _ := seedClassrooms(t, db)
	repo := NewClassroomRepository(db)

	// valid record id but the wrong owner: both predicates apply
	grade := 5
	_, err := repo.Update(context.Background(), policy.Identity{ID: teacherEve, Role: "teacher"},
		aliceRoom.ID, studentBob, ClassroomChanges{Grade: &grade})
	require.ErrorIs(t, err, ErrNoRowsUpdated)

	var unchanged models.ClassroomRecord
	require.NoError(t, db.First(&unchanged, aliceRoom.ID).Error)
	require.Equal(t, 6, unchanged.Grade)
}

func TestClassroomRepositoryStudentUpdateDenied(t *testing.T) {
	db := setupTestDB(t)
	_, bobRoom := seedClassrooms(t, db)
	repo := NewClassroomRepository(db)

	grade := 5
	_, err := repo.Update(context.Background(), policy.Identity{ID: studentAlice, Role: "student"},
		bobRoom.ID, studentBob, ClassroomChanges{Grade: &grade})
	require.ErrorIs(t, err, ErrPolicyDenied)
}

func TestClassroomRepositoryEmptyChangeSet(t *testing.T) {
	db := setupTestDB(t)
	aliceRoom, _ := seedClassrooms(t, db)
	repo := NewClassroomRepository(db)

	_, err := repo.Update(context.Background(), policy.Identity{ID: teacherEve, Role: "teacher"},
		aliceRoom.ID, studentAlice, ClassroomChanges{})
	require.Error(t, err)
}
