package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity kinds recorded in the audit trail.
const (
	ActivityUpdateProgress  = "UPDATE_PROGRESS"
	ActivityUpdateClassroom = "UPDATE_CLASSROOM"
)

// ActivityLogEntry captures one auditable mutation performed by a teacher.
// Entries are append-only; the feed endpoint reads, nothing ever updates.
type ActivityLogEntry struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	TeacherID string                 `bson:"teacherId" json:"teacher_id"`
	StudentID string                 `bson:"studentId" json:"student_id"`
	Activity  string                 `bson:"activity" json:"activity"`
	OldValue  map[string]interface{} `bson:"oldValue" json:"old_value"`
	NewValue  map[string]interface{} `bson:"newValue" json:"new_value"`
	CreatedAt time.Time              `bson:"createdAt" json:"created_at"`
}
