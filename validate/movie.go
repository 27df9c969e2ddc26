package validate

import (
	"errors"
	"strings"

	"club_cinema/constants"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovieInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
		}
		input.Title = strings.TrimSpace(input.Title)
		if input.Title == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_TITLE, errors.New("title is required"))
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
