package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/shared"
)

type SessionHandler struct {
	deviceSvc DeviceServiceInterface
}

func NewSessionHandler(deviceSvc DeviceServiceInterface) *SessionHandler {
	return &SessionHandler{deviceSvc: deviceSvc}
}

// @Summary Create or resume a device session
// @Description Creates an anonymous session for a device and returns a bearer token
// @Tags session
// @Accept json
// @Produce json
// @Param sessionRequest body dto.DeviceSessionRequest true "Device ID"
// @Success 200 {object} shared.Response{data=dto.DeviceSessionResponse}
// @Router /api/v1/session [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.DeviceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := dto.GetValidator().Struct(req); err != nil {
		return shared.ResponseJSON(c, fiber.StatusBadRequest, "Validation failed", dto.FormatValidationErrors(err))
	}

	session, err := h.deviceSvc.CreateOrGetSession(req.DeviceID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}
