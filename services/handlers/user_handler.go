package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// @Summary Update profile
// @Description Update the account name and optionally the password.
// @Tags users
// @Accept json
// @Produce json
// @Param profileRequest body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "User ID is required")
	}

	if req.UserID == 0 {
		return shared.NewBadRequestError(nil, "User ID is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return shared.NewBadRequestError(nil, "Name is required")
	}
	if req.Password != "" && len(req.Password) < 6 {
		return shared.NewBadRequestError(nil, "Password must be at least 6 characters")
	}

	if err := h.userSvc.UpdateProfile(req); err != nil {
		return err
	}

	return shared.ResponseSuccess(c, http.StatusOK, fiber.Map{"message": "Profile updated successfully"})
}
