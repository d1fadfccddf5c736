package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/disparador-app/disparador_api/shared"
)

type AchievementHandler struct {
	achievementSvc AchievementServiceInterface
}

func NewAchievementHandler(achievementSvc AchievementServiceInterface) *AchievementHandler {
	return &AchievementHandler{achievementSvc: achievementSvc}
}

// @Summary Get the medal gallery
// @Description All medals with unlock state, plus next-medal progress
// @Tags achievements
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Device Bearer Token" default(Bearer <token>)
// @Success 200 {object} shared.Response{data=dto.AchievementsResponse}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) GetAchievements(c *fiber.Ctx) error {
	deviceID := c.Locals(shared.DeviceID).(string)

	achievements, err := h.achievementSvc.GetAchievements(deviceID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", achievements)
}
