package validate

import (
	"errors"

	"club_cinema/constants"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

// editableSettings are the documents the admin panel may rewrite. The
// password hash is changed through its own flow, never through this one.
var editableSettings = map[string]bool{
	constants.SettingRules:   true,
	constants.SettingPrivacy: true,
}

func UpdateSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if !editableSettings[key] {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, errors.New("setting not editable: "+key))
		}

		var input model.UpdateSettingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
		}

		c.Locals("settingKey", key)
		c.Locals("input", input)
		return c.Next()
	}
}
