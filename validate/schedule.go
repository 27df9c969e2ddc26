package validate

import (
	"club_cinema/constants"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

func UpsertSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpsertScheduleInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_SCHEDULE_FIELDS, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
