package validate

import (
	"errors"

	"club_cinema/constants"
	"club_cinema/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BookType checks the :rtype route param against the known booking types
// and stashes the normalized value.
func BookType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rtype := c.Params("rtype")
		for _, t := range constants.BookTypes {
			if rtype == t {
				c.Locals("rtype", rtype)
				return c.Next()
			}
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BOOKING_TYPE, errors.New("unknown booking type: "+rtype))
	}
}
