package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/classguard/classguard-api/internal/database"
	"github.com/classguard/classguard-api/internal/models"
)

const activityLogCollection = "activity_log"

// AuditLogFilter narrows audit trail queries for the activity feed.
type AuditLogFilter struct {
	TeacherID string
	StudentID string
	Activity  string
	Limit     int64
}

// AuditLogRepository appends mutation events to the activity log collection.
type AuditLogRepository interface {
	Insert(ctx context.Context, entry *models.ActivityLogEntry) error
	List(ctx context.Context, filter AuditLogFilter) ([]models.ActivityLogEntry, error)
}

type auditLogRepository struct {
	collection *mongo.Collection
}

// NewAuditLogRepository constructs the audit log repository on the document store.
func NewAuditLogRepository(store *database.Mongo) AuditLogRepository {
	return &auditLogRepository{collection: store.Collection(activityLogCollection)}
}

func (r *auditLogRepository) Insert(ctx context.Context, entry *models.ActivityLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *auditLogRepository) List(ctx context.Context, filter AuditLogFilter) ([]models.ActivityLogEntry, error) {
	query := bson.M{}
	if filter.TeacherID != "" {
		query["teacherId"] = filter.TeacherID
	}
	if filter.StudentID != "" {
		query["studentId"] = filter.StudentID
	}
	if filter.Activity != "" {
		query["activity"] = filter.Activity
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
