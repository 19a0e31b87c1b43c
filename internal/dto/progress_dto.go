package dto

import "github.com/classguard/classguard-api/internal/models"

// ProgressUpdateRequest is the payload accepted by the update-progress endpoint.
// Old and new values both travel with the request so the audit entry can record
// the pre- and post-state verbatim.
type ProgressUpdateRequest struct {
	StudentID       string `json:"studentId" validate:"required,uuid4"`
	OldProgress     int    `json:"oldProgress" validate:"min=0,max=100"`
	UpdatedProgress int    `json:"updatedProgress" validate:"min=0,max=100"`
}

// ProgressListResponse is the payload returned by the progress listing.
type ProgressListResponse struct {
	Items    []models.ProgressRecord `json:"items"`
	CacheHit bool                    `json:"cache_hit"`
}
