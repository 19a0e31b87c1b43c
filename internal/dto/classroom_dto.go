package dto

import "github.com/classguard/classguard-api/internal/models"

// ClassroomFields carries the mutable classroom columns. Nil fields are not
// part of the update.
type ClassroomFields struct {
	Grade     *int    `json:"grade,omitempty"`
	ClassName *string `json:"class_name,omitempty"`
}

// ClassroomUpdateRequest is the payload accepted by the update-classroom
// endpoint. Both the record id and the owning student id scope the mutation.
type ClassroomUpdateRequest struct {
	RecordID    uint            `json:"recordId" validate:"required"`
	StudentID   string          `json:"studentId" validate:"required,uuid4"`
	UpdatedData ClassroomFields `json:"updatedData"`
	OldData     ClassroomFields `json:"oldData"`
}

// ClassroomListResponse is the payload returned by the classroom listing.
type ClassroomListResponse struct {
	Items    []models.ClassroomRecord `json:"items"`
	CacheHit bool                     `json:"cache_hit"`
}
