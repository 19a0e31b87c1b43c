package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/policy"
)

// ClassroomChanges carries the mutable classroom fields of an update. Nil
// fields are left untouched.
type ClassroomChanges struct {
	Grade     *int
	ClassName *string
}

// Empty reports whether the change set carries no fields.
func (c ClassroomChanges) Empty() bool {
	return c.Grade == nil && c.ClassName == nil
}

// ClassroomRepository reads and mutates classroom records with policy
// re-checks at the storage boundary.
type ClassroomRepository interface {
	ListFor(ctx context.Context, identity policy.Identity) ([]models.ClassroomRecord, error)
	Update(ctx context.Context, identity policy.Identity, recordID uint, studentID string, changes ClassroomChanges) (models.ClassroomRecord, error)
}

type classroomRepository struct {
	db *gorm.DB
}

// NewClassroomRepository constructs the classroom repository.
func NewClassroomRepository(db *gorm.DB) ClassroomRepository {
	return &classroomRepository{db: db}
}

func (r *classroomRepository) ListFor(ctx context.Context, identity policy.Identity) ([]models.ClassroomRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.ClassroomRecord{})

	if owner, restricted := policy.ReadScope(identity); restricted {
		if decision := policy.Decide(identity, policy.ActionRead, owner); !decision.Allowed {
			return nil, fmt.Errorf("%w: %s", ErrPolicyDenied, decision.Reason)
		}
		query = query.Where("user_id = ?", owner)
	}

	var records []models.ClassroomRecord
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// Update applies the change set to the record matching BOTH the record id and
// the owning student id. The double predicate stops a caller from guessing a
// record id that belongs to a different owner.
func (r *classroomRepository) Update(ctx context.Context, identity policy.Identity, recordID uint, studentID string, changes ClassroomChanges) (models.ClassroomRecord, error) {
	if decision := policy.Decide(identity, policy.ActionUpdate, studentID); !decision.Allowed {
		return models.ClassroomRecord{}, fmt.Errorf("%w: %s", ErrPolicyDenied, decision.Reason)
	}

	updates := map[string]interface{}{}
	if changes.Grade != nil {
		updates["grade"] = *changes.Grade
	}
	if changes.ClassName != nil {
		updates["class_name"] = *changes.ClassName
	}
	if len(updates) == 0 {
		return models.ClassroomRecord{}, fmt.Errorf("no updatable fields provided")
	}

	result := r.db.WithContext(ctx).
		Model(&models.ClassroomRecord{}).
		Where("id = ? AND user_id = ?", recordID, studentID).
		Updates(updates)
	if result.Error != nil {
		return models.ClassroomRecord{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ClassroomRecord{}, ErrNoRowsUpdated
	}

	var updated models.ClassroomRecord
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", recordID, studentID).First(&updated).Error; err != nil {
		return models.ClassroomRecord{}, err
	}

	return updated, nil
}
