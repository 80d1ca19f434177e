package handlers

import (
	"github.com/codemastery/course_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.AuthUser, error)
	Login(req dto.LoginRequest) (*dto.AuthUser, error)
}

type UserServiceInterface interface {
	UpdateProfile(req dto.UpdateProfileRequest) error
}

type ProgressServiceInterface interface {
	Get(userID uint) (*dto.Progress, error)
	Update(req dto.UpdateProgressRequest) error
}

type AdminServiceInterface interface {
	ListUsers() ([]dto.AdminUserInfo, error)
	DeleteUser(userID uint) error
}
