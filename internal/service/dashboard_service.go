package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/dto"
	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/policy"
	"github.com/classguard/classguard-api/internal/repository"
)

// DashboardService serves the role-filtered listings behind the dashboard
// pages. Listings are cached per identity scope so one student's cached rows
// can never be served to another caller.
type DashboardService interface {
	Progress(ctx context.Context, identity policy.Identity) (dto.ProgressListResponse, error)
	Classrooms(ctx context.Context, identity policy.Identity) (dto.ClassroomListResponse, error)
}

type dashboardService struct {
	progress   repository.ProgressRepository
	classrooms repository.ClassroomRepository
	cache      *redis.Client
	ttl        time.Duration
	logger     zerolog.Logger
}

// NewDashboardService constructs the dashboard listing service.
func NewDashboardService(progress repository.ProgressRepository, classrooms repository.ClassroomRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &dashboardService{
		progress:   progress,
		classrooms: classrooms,
		cache:      cache,
		ttl:        ttl,
		logger:     logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) Progress(ctx context.Context, identity policy.Identity) (dto.ProgressListResponse, error) {
	key := s.cacheKey("progress", identity)

	var cached dto.ProgressListResponse
	if s.readCache(ctx, key, &cached) {
		cached.CacheHit = true
		return cached, nil
	}

	records, err := s.progress.ListFor(ctx, identity)
	if err != nil {
		return dto.ProgressListResponse{}, err
	}
	if records == nil {
		records = []models.ProgressRecord{}
	}

	response := dto.ProgressListResponse{Items: records}
	s.writeCache(ctx, key, response)
	return response, nil
}

func (s *dashboardService) Classrooms(ctx context.Context, identity policy.Identity) (dto.ClassroomListResponse, error) {
	key := s.cacheKey("classrooms", identity)

	var cached dto.ClassroomListResponse
	if s.readCache(ctx, key, &cached) {
		cached.CacheHit = true
		return cached, nil
	}

	records, err := s.classrooms.ListFor(ctx, identity)
	if err != nil {
		return dto.ClassroomListResponse{}, err
	}
	if records == nil {
		records = []models.ClassroomRecord{}
	}

	response := dto.ClassroomListResponse{Items: records}
	s.writeCache(ctx, key, response)
	return response, nil
}

// Teachers share one cache entry per table; students get an entry keyed by
// their own id.
func (s *dashboardService) cacheKey(table string, identity policy.Identity) string {
	if identity.IsTeacher() {
		return fmt.Sprintf("classguard:dashboard:%s:teacher", table)
	}
	return fmt.Sprintf("classguard:dashboard:%s:student:%s", table, identity.ID)
}

func (s *dashboardService) readCache(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}

	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil || raw == "" {
		return false
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding malformed cache entry")
		return false
	}

	return true
}

func (s *dashboardService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to populate cache")
	}
}
