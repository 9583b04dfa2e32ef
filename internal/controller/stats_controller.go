package controller

import (
	"emlakweb_backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PageViewInput struct {
	Path string `json:"path"`
}

var statsRepo *repository.StatsRepository

func InitStatsController(repo *repository.StatsRepository) {
	statsRepo = repo
}

// GetDashboardStats dashboard istatistiklerini getirir
func GetDashboardStats(c *fiber.Ctx) error {
	stats, err := statsRepo.Dashboard(c.UserContext())
	if err != nil {
		return internalError(c, "Could not fetch dashboard stats", err)
	}
	return success(c, fiber.StatusOK, stats)
}

// RecordPageView sayfa görüntülenmesini kaydeder; analitik onayı middleware'de kontrol edilir
func RecordPageView(c *fiber.Ctx) error {
	input := new(PageViewInput)
	if err := c.BodyParser(input); err != nil || input.Path == "" {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}

	if err := statsRepo.RecordPageView(c.UserContext(), input.Path); err != nil {
		return internalError(c, "Could not record page view", err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"recorded": true})
}
