package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/shared"
)

type AuthHandler struct {
	authSvc AuthServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// @Summary Register a new user
// @Description Create a new account with an empty progress record. The first account ever created gets the admin role.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Registration details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "All fields are required")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err, "All fields are required"))
	}

	user, err := h.authSvc.Register(req)
	if err != nil {
		return err
	}

	return shared.ResponseSuccess(c, http.StatusCreated, fiber.Map{"user": user})
}

// @Summary Login
// @Description Authenticate by email and password and return the account with its progress.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Email and password are required")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err, "Email and password are required"))
	}

	user, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	return shared.ResponseSuccess(c, http.StatusOK, fiber.Map{"user": user})
}
