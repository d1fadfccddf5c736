package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/shared"
)

type BreakdownHandler struct {
	breakdownSvc BreakdownServiceInterface
}

func NewBreakdownHandler(breakdownSvc BreakdownServiceInterface) *BreakdownHandler {
	return &BreakdownHandler{breakdownSvc: breakdownSvc}
}

// @Summary Break a task into micro-steps
// @Description Generates 3 tiny first actions for the task; serves fixed fallback steps if generation fails
// @Tags breakdown
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Param breakdownRequest body dto.BreakdownRequest true "Task description"
// @Success 200 {object} shared.Response{data=dto.BreakdownResponse}
// @Router /api/v1/breakdown [post]
func (h *BreakdownHandler) GetBreakdown(c *fiber.Ctx) error {
	var req dto.BreakdownRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := dto.GetValidator().Struct(req); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	steps := h.breakdownSvc.GetTaskBreakdown(c.Context(), req.Task)

	stepResponses := make([]dto.TaskStepResponse, len(steps))
	for i, s := range steps {
		stepResponses[i] = dto.TaskStepResponse{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
		}
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.BreakdownResponse{
		Task:  req.Task,
		Steps: stepResponses,
	})
}

// @Summary Coin a victory title
// @Description Generates a short heroic title for the beaten task; serves a fixed phrase if generation fails
// @Tags breakdown
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Param titleRequest body dto.VictoryTitleRequest true "Task description"
// @Success 200 {object} shared.Response{data=dto.VictoryTitleResponse}
// @Router /api/v1/victory-title [post]
func (h *BreakdownHandler) GetVictoryTitle(c *fiber.Ctx) error {
	var req dto.VictoryTitleRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := dto.GetValidator().Struct(req); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	title := h.breakdownSvc.GetVictoryTitle(c.Context(), req.Task)

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.VictoryTitleResponse{Title: title})
}
