package dto

// ProfileCreateRequest is the payload accepted by the profile creation endpoint.
type ProfileCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=student teacher"`
}
