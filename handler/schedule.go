package handler

import (
	"errors"

	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetSchedule lists bookable dates in calendar order.
func GetSchedule(c *fiber.Ctx) error {
	db := database.DB

	var entries []model.ScheduleEntry
	if err := db.Order("date ASC").Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

// UpsertSchedule saves one showing per date: inserting an existing date
// updates its time and hall in place.
func UpsertSchedule(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.UpsertScheduleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	entry := model.ScheduleEntry{Date: input.Date, Time: input.Time, Hall: input.Hall}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"time", "hall"}),
	}).Create(&entry).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

func DeleteSchedule(c *fiber.Ctx) error {
	db := database.DB
	date := c.Params("date")

	result := db.Delete(&model.ScheduleEntry{}, "date = ?", date)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCHEDULE_NOT_FOUND, errors.New("no showing on "+date))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": date})
}
