package middleware

import (
	"errors"
	"strings"

	"club_cinema/constants"
	"club_cinema/helper"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
)

func roleFromRequest(c *fiber.Ctx, cookieName string) string {
	token := c.Cookies(cookieName)

	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if token == "" {
		return ""
	}

	jwtToken, err := helper.ParseToken(token)
	if err != nil || !jwtToken.Valid {
		return ""
	}
	return helper.TokenRole(jwtToken)
}

// AdminRequired gates the admin panel behind the admin session cookie.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if roleFromRequest(c, "admin_token") != constants.RoleAdmin {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_ADMIN, errors.New("missing or invalid admin token"))
		}
		return c.Next()
	}
}

// TeacherRequired gates teacher-led booking behind the teacher passcode
// session cookie.
func TeacherRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if roleFromRequest(c, "teacher_token") != constants.RoleTeacher {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_TEACHER, errors.New("teacher login required"))
		}
		return c.Next()
	}
}

// TeacherRequiredForType gates only teacher-led reservations: the other
// booking types stay open to anonymous sessions.
func TeacherRequiredForType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("rtype") != constants.BookTypeTeacher {
			return c.Next()
		}
		if roleFromRequest(c, "teacher_token") != constants.RoleTeacher {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_TEACHER, errors.New("teacher login required"))
		}
		return c.Next()
	}
}

// ConsentRequired blocks the booking flow until the session finished both
// consent steps. The response names the step to resume and echoes the
// intended booking type so the client can continue the chain.
func ConsentRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := GetSession(c)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		state, _ := sess.Get(KeyConsentState).(string)
		if state != helper.ConsentFull {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": constants.CONSENT_REQUIRED,
				"step":    helper.NextConsentStep(state),
				"rtype":   c.Params("rtype", c.Query("rtype")),
			})
		}
		return c.Next()
	}
}
