package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

// @Summary Update progress
// @Description Replace the user's completed lessons, bookmarks and completion percentage with the supplied state.
// @Tags progress
// @Accept json
// @Produce json
// @Param updateRequest body dto.UpdateProgressRequest true "Complete progress state"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/progress/update [post]
func (h *ProgressHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "User ID is required")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err, "User ID is required"))
	}

	if err := h.progressSvc.Update(req); err != nil {
		return err
	}

	return shared.ResponseSuccess(c, http.StatusOK, nil)
}

// @Summary Get progress
// @Description Return the user's completed lessons, bookmarks and completion percentage.
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/progress/{userId} [get]
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return shared.NewBadRequestError(err, "Invalid user ID")
	}

	progress, err := h.progressSvc.Get(uint(userID))
	if err != nil {
		return err
	}

	return shared.ResponseSuccess(c, http.StatusOK, fiber.Map{"progress": progress})
}
