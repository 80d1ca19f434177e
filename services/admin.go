package services

import (
	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/model"
	"github.com/codemastery/course_api/services/repositories"
	"github.com/codemastery/course_api/shared"
)

type AdminService struct {
	context.DefaultService

	sqlSvc *MysqlService

	users *repositories.UserRepository
}

const ADMIN_SVC = "admin_svc"

func (svc AdminService) Id() string {
	return ADMIN_SVC
}

func (svc *AdminService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminService) Start() error {
	svc.sqlSvc = svc.Service(MYSQL_SVC).(*MysqlService)
	svc.users = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// ListUsers returns every account with its progress summary, newest first.
func (svc *AdminService) ListUsers() ([]dto.AdminUserInfo, error) {
	rows, err := svc.users.ListUsersWithProgress()
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	users := make([]dto.AdminUserInfo, 0, len(rows))
	for _, row := range rows {
		info := dto.AdminUserInfo{
			ID:               row.ID,
			Name:             row.Name,
			Email:            row.Email,
			Role:             row.Role,
			CreatedAt:        row.CreatedAt,
			CompletedLessons: len(decodeLessonIDs(row.CompletedLessons)),
		}
		if info.Role == "" {
			info.Role = model.RoleStudent
		}
		if row.ProgressPercentage != nil {
			info.ProgressPercentage = *row.ProgressPercentage
		}
		users = append(users, info)
	}
	return users, nil
}

// DeleteUser removes the account; the store cascades the delete to its
// progress record. Deleting an id that does not exist is not an error.
func (svc *AdminService) DeleteUser(userID uint) error {
	if err := svc.users.DeleteUser(userID); err != nil {
		return shared.NewInternalError(err)
	}

	log.WithField("user_id", userID).Info("User deleted")
	return nil
}
