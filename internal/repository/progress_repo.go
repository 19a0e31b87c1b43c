package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/policy"
)

// ProgressRepository reads and mutates progress records. Every method
// re-evaluates the access policy at the storage boundary, independent of any
// check the caller already performed.
type ProgressRepository interface {
	ListFor(ctx context.Context, identity policy.Identity) ([]models.ProgressRecord, error)
	UpdateByOwner(ctx context.Context, identity policy.Identity, studentID string, percent int) (models.ProgressRecord, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository constructs the progress repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) ListFor(ctx context.Context, identity policy.Identity) ([]models.ProgressRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.ProgressRecord{})

	if owner, restricted := policy.ReadScope(identity); restricted {
		if decision := policy.Decide(identity, policy.ActionRead, owner); !decision.Allowed {
			return nil, fmt.Errorf("%w: %s", ErrPolicyDenied, decision.Reason)
		}
		query = query.Where("user_id = ?", owner)
	}

	var records []models.ProgressRecord
	if err := query.Order("user_id").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *progressRepository) UpdateByOwner(ctx context.Context, identity policy.Identity, studentID string, percent int) (models.ProgressRecord, error) {
	if decision := policy.Decide(identity, policy.ActionUpdate, studentID); !decision.Allowed {
		return models.ProgressRecord{}, fmt.Errorf("%w: %s", ErrPolicyDenied, decision.Reason)
	}

	result := r.db.WithContext(ctx).
		Model(&models.ProgressRecord{}).
		Where("user_id = ?", studentID).
		Update("progress_percent", percent)
	if result.Error != nil {
		return models.ProgressRecord{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ProgressRecord{}, ErrNoRowsUpdated
	}

	var updated models.ProgressRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", studentID).First(&updated).Error; err != nil {
		return models.ProgressRecord{}, err
	}

	return updated, nil
}
