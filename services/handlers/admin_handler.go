package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/codemastery/course_api/shared"
)

type AdminHandler struct {
	adminSvc AdminServiceInterface
}

func NewAdminHandler(adminSvc AdminServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
	}
}

// @Summary Get all users (Admin)
// @Description List every account with its progress summary, newest first.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminSvc.ListUsers()
	if err != nil {
		return err
	}

	return shared.ResponseSuccess(c, http.StatusOK, fiber.Map{"users": users})
}

// @Summary Delete user (Admin)
// @Description Delete an account; its progress record is removed with it.
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return shared.NewBadRequestError(err, "Invalid user ID")
	}

	if err := h.adminSvc.DeleteUser(uint(userID)); err != nil {
		return err
	}

	return shared.ResponseSuccess(c, http.StatusOK, nil)
}
