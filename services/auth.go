package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/model"
	"github.com/codemastery/course_api/services/repositories"
	"github.com/codemastery/course_api/shared"
)

type AuthService struct {
	context.DefaultService

	sqlSvc *MysqlService

	users    *repositories.UserRepository
	progress *repositories.ProgressRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(MYSQL_SVC).(*MysqlService)
	svc.users = repositories.NewUserRepository(svc.sqlSvc.Db())
	svc.progress = repositories.NewProgressRepository(svc.sqlSvc.Db())
	return nil
}

// Register creates the account and its empty progress record. The first
// account ever created becomes the admin; everyone after is a student.
func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.AuthUser, error) {
	if _, err := svc.users.GetUserByEmail(req.Email); err == nil {
		return nil, shared.NewBadRequestError(nil, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err)
	}

	hash, err := svc.hashPassword(req.Password)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	if err := svc.users.CreateUserWithProgress(user); err != nil {
		// Two concurrent registrations can pass the pre-check; the unique
		// index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.NewBadRequestError(err, "Email already exists")
		}
		return nil, shared.NewInternalError(err)
	}

	log.WithFields(log.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")

	return &dto.AuthUser{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		Progress:         0,
		CompletedLessons: make([]int, 0),
		Bookmarks:        make([]int, 0),
	}, nil
}

// Login authenticates by exact email match and bcrypt comparison. An unknown
// email and a wrong password produce the same error on purpose.
func (svc *AuthService) Login(req dto.LoginRequest) (*dto.AuthUser, error) {
	user, err := svc.users.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials(err)
		}
		return nil, shared.NewInternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, invalidCredentials(err)
	}

	view := &dto.AuthUser{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		CompletedLessons: make([]int, 0),
		Bookmarks:        make([]int, 0),
	}
	if view.Role == "" {
		view.Role = model.RoleStudent
	}

	// A missing progress record degrades to empty defaults rather than
	// failing the login.
	progress, err := svc.progress.GetByUserID(user.ID)
	if err == nil {
		view.Progress = progress.ProgressPercentage
		view.CompletedLessons = decodeLessonIDs(progress.CompletedLessons)
		view.Bookmarks = decodeLessonIDs(progress.Bookmarks)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return view, nil
}

func invalidCredentials(err error) error {
	return shared.NewUnauthorizedError(err, "Invalid email or password")
}

func (svc *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
