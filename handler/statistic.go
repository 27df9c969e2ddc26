package handler

import (
	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

// Healthz answers liveness probes; it also verifies the database handle.
func Healthz(c *fiber.Ctx) error {
	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).SendString("db unavailable")
	}
	return c.SendString("ok")
}

// GetAdminStats powers the dashboard: per-status counts and the latest 20
// reservations.
func GetAdminStats(c *fiber.Ctx) error {
	db := database.DB

	type Stats struct {
		Total    int64         `json:"total"`
		Pending  int64         `json:"pending"`
		Approved int64         `json:"approved"`
		Rejected int64         `json:"rejected"`
		Latest   model.Tickets `json:"latest"`
	}

	var stats Stats
	db.Model(&model.Ticket{}).Count(&stats.Total)
	db.Model(&model.Ticket{}).Where("status = ?", constants.StatusPending).Count(&stats.Pending)
	db.Model(&model.Ticket{}).Where("status = ?", constants.StatusApproved).Count(&stats.Approved)
	db.Model(&model.Ticket{}).Where("status = ?", constants.StatusRejected).Count(&stats.Rejected)

	if err := db.Order("created_at DESC").Limit(20).Find(&stats.Latest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
