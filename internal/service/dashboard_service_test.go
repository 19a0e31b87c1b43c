package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/policy"
)

type listingProgressRepoStub struct {
	rows  map[string][]models.ProgressRecord
	calls int
}

func (l *listingProgressRepoStub) ListFor(_ context.Context, identity policy.Identity) ([]models.ProgressRecord, error) {
	l.calls++
	if identity.IsTeacher() {
		var all []models.ProgressRecord
		for _, rows := range l.rows {
			all = append(all, rows...)
		}
		return all, nil
	}
	return l.rows[identity.ID], nil
}

func (l *listingProgressRepoStub) UpdateByOwner(_ context.Context, _ policy.Identity, _ string, _ int) (models.ProgressRecord, error) {
	return models.ProgressRecord{}, nil
}

func newCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDashboardServiceProgressCaching(t *testing.T) {
	repo := &listingProgressRepoStub{rows: map[string][]models.ProgressRecord{
		testStudentID: {{ID: 1, UserID: testStudentID, ProgressPercent: 40}},
	}}
	svc := NewDashboardService(repo, &classroomRepoStub{}, newCacheClient(t), time.Minute, testLogger())

	identity := policy.Identity{ID: testStudentID, Role: "student"}

	first, err := svc.Progress(context.Background(), identity)
	require.NoError(t, err)
	require.False(t, first.CacheHit)
	require.Len(t, first.Items, 1)

	second, err := svc.Progress(context.Background(), identity)
	require.NoError(t, err)
	require.True(t, second.CacheHit)
	require.Len(t, second.Items, 1)
	require.Equal(t, 1, repo.calls, "second read must come from cache")
}

func TestDashboardServiceCacheKeysAreScopedPerStudent(t *testing.T) {
	otherStudent := "22222222-2222-4222-8222-222222222222"
	repo := &listingProgressRepoStub{rows: map[string][]models.ProgressRecord{
		testStudentID: {{ID: 1, UserID: testStudentID, ProgressPercent: 40}},
		otherStudent:  {{ID: 2, UserID: otherStudent, ProgressPercent: 90}},
	}}
	svc := NewDashboardService(repo, &classroomRepoStub{}, newCacheClient(t), time.Minute, testLogger())

	first, err := svc.Progress(context.Background(), policy.Identity{ID: testStudentID, Role: "student"})
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	require.Equal(t, testStudentID, first.Items[0].UserID)

	// the other student must not be served the first student's cache entry
	second, err := svc.Progress(context.Background(), policy.Identity{ID: otherStudent, Role: "student"})
	require.NoError(t, err)
	require.False(t, second.CacheHit)
	require.Len(t, second.Items, 1)
	require.Equal(t, otherStudent, second.Items[0].UserID)
}

func TestDashboardServiceWorksWithoutCache(t *testing.T) {
	repo := &listingProgressRepoStub{rows: map[string][]models.ProgressRecord{
		testStudentID: {{ID: 1, UserID: testStudentID, ProgressPercent: 40}},
	}}
	svc := NewDashboardService(repo, &classroomRepoStub{}, nil, time.Minute, testLogger())

	resp, err := svc.Progress(context.Background(), policy.Identity{ID: testStudentID, Role: "student"})
	require.NoError(t, err)
	require.False(t, resp.CacheHit)
	require.Len(t, resp.Items, 1)
}
