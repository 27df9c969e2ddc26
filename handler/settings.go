package handler

import (
	"errors"

	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/helper"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRules returns the rules document students must accept before booking.
func GetRules(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"key":   constants.SettingRules,
		"value": helper.GetSetting(database.DB, constants.SettingRules, ""),
	})
}

// GetPrivacy returns the privacy notice shown at the second consent step.
func GetPrivacy(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"key":   constants.SettingPrivacy,
		"value": helper.GetSetting(database.DB, constants.SettingPrivacy, ""),
	})
}

// UpdateSetting rewrites one of the editable documents.
func UpdateSetting(c *fiber.Ctx) error {
	key, _ := c.Locals("settingKey").(string)
	input, ok := c.Locals("input").(model.UpdateSettingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := helper.UpsertSetting(database.DB, key, input.Value); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"key": key, "value": input.Value})
}
