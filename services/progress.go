package services

import (
	"encoding/json"
	"errors"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/services/repositories"
	"github.com/codemastery/course_api/shared"
)

type ProgressService struct {
	context.DefaultService

	sqlSvc *MysqlService

	progress *repositories.ProgressRepository
}

const PROGRESS_SVC = "progress_svc"

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	svc.sqlSvc = svc.Service(MYSQL_SVC).(*MysqlService)
	svc.progress = repositories.NewProgressRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *ProgressService) Get(userID uint) (*dto.Progress, error) {
	progress, err := svc.progress.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Progress not found")
		}
		return nil, shared.NewInternalError(err)
	}

	return &dto.Progress{
		CompletedLessons:   decodeLessonIDs(progress.CompletedLessons),
		Bookmarks:          decodeLessonIDs(progress.Bookmarks),
		ProgressPercentage: progress.ProgressPercentage,
	}, nil
}

// Update replaces the stored progress wholesale with what the caller sent.
// Callers supply the complete current state; nothing is merged.
func (svc *ProgressService) Update(req dto.UpdateProgressRequest) error {
	completed, err := encodeLessonIDs(req.CompletedLessons)
	if err != nil {
		return shared.NewInternalError(err)
	}
	bookmarks, err := encodeLessonIDs(req.Bookmarks)
	if err != nil {
		return shared.NewInternalError(err)
	}

	if err := svc.progress.ReplaceForUser(req.UserID, completed, bookmarks, req.ProgressPercentage); err != nil {
		return shared.NewInternalError(err)
	}
	return nil
}

// decodeLessonIDs reads a stored JSON lesson id list, falling back to an
// empty list for null or corrupt columns so callers always get a usable
// slice.
func decodeLessonIDs(raw json.RawMessage) []int {
	ids := make([]int, 0)
	if len(raw) == 0 {
		return ids
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.WithError(err).Warn("Discarding unreadable lesson id list")
		return make([]int, 0)
	}
	return ids
}

func encodeLessonIDs(ids []int) (json.RawMessage, error) {
	if ids == nil {
		ids = make([]int, 0)
	}
	return json.Marshal(ids)
}
