package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/shared"
)

type StatsHandler struct {
	statsSvc StatsServiceInterface
}

func NewStatsHandler(statsSvc StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// @Summary Get current stats
// @Description Get the device's focus stats: minutes, completed tasks, streak
// @Tags stats
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Success 200 {object} shared.Response{data=dto.StatsResponse}
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	stats, err := h.statsSvc.Load(deviceID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.StatsResponse{
		MinutesFocused:     stats.MinutesFocused,
		TasksCompleted:     stats.TasksCompleted,
		Streak:             stats.Streak,
		LastCompletionDate: stats.LastCompletionDate,
	})
}

// @Summary Record a completed focus session
// @Description Adds the session minutes, counts the task, rolls the streak
// @Tags stats
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Param completeRequest body dto.CompleteSessionRequest true "Completed session"
// @Success 200 {object} shared.Response{data=dto.StatsResponse}
// @Router /api/v1/session/complete [post]
func (h *StatsHandler) CompleteSession(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	var req dto.CompleteSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := dto.GetValidator().Struct(req); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	stats, err := h.statsSvc.RecordCompletion(deviceID, req.Minutes, req.Task)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.StatsResponse{
		MinutesFocused:     stats.MinutesFocused,
		TasksCompleted:     stats.TasksCompleted,
		Streak:             stats.Streak,
		LastCompletionDate: stats.LastCompletionDate,
	})
}

// @Summary List recent focus sessions
// @Description Most recent completed sessions for the device
// @Tags stats
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Param limit query int false "Max sessions to return" default(20)
// @Success 200 {object} shared.Response{data=dto.SessionHistoryResponse}
// @Router /api/v1/stats/history [get]
func (h *StatsHandler) GetHistory(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	history, err := h.statsSvc.History(deviceID, limit)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", history)
}
