package model

import (
	"encoding/json"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role      string    `json:"role" gorm:"default:student"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProgress is the 1:1 per-user lesson progress record. The lesson id
// collections are stored as JSON text and passed through untouched, the
// client owns their ordering and contents.
type UserProgress struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	UserID             uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	CompletedLessons   json.RawMessage `json:"completed_lessons" gorm:"type:text"`
	Bookmarks          json.RawMessage `json:"bookmarks" gorm:"type:text"`
	ProgressPercentage int             `json:"progress_percentage" gorm:"default:0"`
	LastLessonID       int             `json:"last_lesson_id" gorm:"default:1"`
	UpdatedAt          time.Time       `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the table compatible with databases created by earlier
// deployments, which used the singular name.
func (UserProgress) TableName() string {
	return "user_progress"
}
