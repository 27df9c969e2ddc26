package validate

import (
	"errors"

	"club_cinema/constants"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func SetTicketStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetTicketStatusInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
		}

		// Any target outside the three known statuses is a user error and
		// must leave the stored status untouched.
		valid := false
		for _, s := range constants.TicketStatuses {
			if input.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("unknown status: "+input.Status))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func FilterTickets() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterTicketInput

		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.Type == "" {
			input.Type = constants.BookTypeNormal
		}

		c.Locals("input", input)
		return c.Next()
	}
}
