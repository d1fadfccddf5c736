package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/shared"
)

type TimerHandler struct {
	timerSvc TimerServiceInterface
}

func NewTimerHandler(timerSvc TimerServiceInterface) *TimerHandler {
	return &TimerHandler{timerSvc: timerSvc}
}

// @Summary Start a focus countdown
// @Description Starts a server-driven countdown (default 300 seconds), discarding any previous one
// @Tags timer
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Param startRequest body dto.StartTimerRequest false "Countdown options"
// @Success 200 {object} shared.Response{data=dto.TimerStateResponse}
// @Router /api/v1/timer/start [post]
func (h *TimerHandler) Start(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	var req dto.StartTimerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return shared.NewBadRequestError(err, "Invalid request")
		}
		if err := dto.GetValidator().Struct(req); err != nil {
			return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
		}
	}

	state := h.timerSvc.StartCountdown(deviceID, req.Task, req.DurationSeconds)
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Pause the countdown
// @Tags timer
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Success 200 {object} shared.Response{data=dto.TimerStateResponse}
// @Router /api/v1/timer/pause [post]
func (h *TimerHandler) Pause(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	state, err := h.timerSvc.PauseCountdown(deviceID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Resume the countdown
// @Tags timer
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Success 200 {object} shared.Response{data=dto.TimerStateResponse}
// @Router /api/v1/timer/resume [post]
func (h *TimerHandler) Resume(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	state, err := h.timerSvc.ResumeCountdown(deviceID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}

// @Summary Abandon the countdown
// @Description Discards the active countdown without recording a session
// @Tags timer
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Success 200 {object} shared.Response
// @Router /api/v1/timer/abandon [post]
func (h *TimerHandler) Abandon(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	if err := h.timerSvc.AbandonCountdown(deviceID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Get countdown state
// @Tags timer
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Success 200 {object} shared.Response{data=dto.TimerStateResponse}
// @Router /api/v1/timer [get]
func (h *TimerHandler) State(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	state, err := h.timerSvc.CountdownState(deviceID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", state)
}
