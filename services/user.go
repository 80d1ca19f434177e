package services

import (
	"strings"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/services/repositories"
	"github.com/codemastery/course_api/shared"
)

type UserService struct {
	context.DefaultService

	sqlSvc *MysqlService

	users *repositories.UserRepository
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.sqlSvc = svc.Service(MYSQL_SVC).(*MysqlService)
	svc.users = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// UpdateProfile renames the account and, when a password is supplied,
// replaces the stored hash. The two updates are independent; callers may
// send only a name.
func (svc *UserService) UpdateProfile(req dto.UpdateProfileRequest) error {
	name := strings.TrimSpace(req.Name)

	hash := ""
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return shared.NewInternalError(err)
		}
		hash = string(h)
	}

	if err := svc.users.UpdateProfile(req.UserID, name, hash); err != nil {
		return shared.NewInternalError(err)
	}

	log.WithField("user_id", req.UserID).Info("Profile updated")
	return nil
}
