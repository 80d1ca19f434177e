package repositories

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/codemastery/course_api/model"
)

// ProgressRepository handles the per-user progress records
type ProgressRepository struct {
	BaseRepository
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ProgressRepository) GetByUserID(userID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	if err := ds.db.Where("user_id = ?", userID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// ReplaceForUser overwrites the three progress fields wholesale. There is no
// existence check: an update for an unknown user id affects zero rows and is
// not an error.
func (ds *ProgressRepository) ReplaceForUser(userID uint, completedLessons, bookmarks json.RawMessage, percentage int) error {
	return ds.db.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"completed_lessons":   string(completedLessons),
			"bookmarks":           string(bookmarks),
			"progress_percentage": percentage,
			"updated_at":          time.Now(),
		}).Error
}
