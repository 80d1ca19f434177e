package dto

import "time"

type UpdateProfileRequest struct {
	UserID   uint   `json:"userId" example:"1"`
	Name     string `json:"name" example:"Jane Doe"`
	Password string `json:"password,omitempty" example:"newsecret"`
}

// AdminUserInfo is one row of the admin user listing: account fields joined
// with the progress percentage and the number of completed lessons.
type AdminUserInfo struct {
	ID                 uint      `json:"id" example:"1"`
	Name               string    `json:"name" example:"Jane Doe"`
	Email              string    `json:"email" example:"jane@example.com"`
	Role               string    `json:"role" example:"student"`
	CreatedAt          time.Time `json:"created_at"`
	ProgressPercentage int       `json:"progress_percentage" example:"15"`
	CompletedLessons   int       `json:"completed_lessons" example:"3"`
}
