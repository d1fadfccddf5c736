package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/disparador-app/disparador_api/shared"
)

type ShareHandler struct {
	shareSvc ShareServiceInterface
}

func NewShareHandler(shareSvc ShareServiceInterface) *ShareHandler {
	return &ShareHandler{shareSvc: shareSvc}
}

// @Summary Build share content
// @Description Share text and URL for a session, medal or streak
// @Tags share
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Param type query string true "Share type" Enums(session, medal, streak)
// @Success 200 {object} shared.Response{data=dto.ShareResponse}
// @Failure 400 {object} shared.Response
// @Router /api/v1/share [get]
func (h *ShareHandler) GetShareContent(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	shareType := c.Query("type")
	if shareType == "" {
		return shared.NewBadRequestError(nil, "Missing share type")
	}

	content, err := h.shareSvc.CreateShareContent(deviceID, shareType)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", content)
}
