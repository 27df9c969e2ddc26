package handler

import (
	"errors"
	"fmt"
	"time"

	"club_cinema/config"
	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/helper"
	"club_cinema/middleware"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func setRoleCookie(c *fiber.Ctx, name, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearRoleCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// AdminLogin compares the submitted password against the bcrypt hash in the
// settings store and sets the admin session cookie on success.
func AdminLogin(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	hash := helper.AdminPasswordHash()
	if hash == "" || !helper.CheckPasswordHash(input.Password, hash) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password mismatch"))
	}

	token, err := helper.GenerateRoleToken(constants.RoleAdmin)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setRoleCookie(c, "admin_token", token)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"role": constants.RoleAdmin})
}

func AdminLogout(c *fiber.Ctx) error {
	clearRoleCookie(c, "admin_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"loggedOut": true})
}

// ChangeAdminPassword requires the current password and stores the bcrypt
// hash of the new one in the settings store.
func ChangeAdminPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, helper.AdminPasswordHash()) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("current password mismatch"))
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.UpsertSetting(database.DB, constants.SettingAdminPassword, hash); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.SendPasswordChangedNotice()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"changed": true})
}

func throttleState(sess *session.Session) helper.ThrottleState {
	state := helper.ThrottleState{}
	if v, ok := sess.Get(middleware.KeyTeacherAttempts).(int); ok {
		state.Attempts = v
	}
	if v, ok := sess.Get(middleware.KeyTeacherLockUntil).(int64); ok {
		state.LockUntil = v
	}
	return state
}

// TeacherLogin checks the shared passcode. Five consecutive failures within
// a session lock further attempts for 300 seconds; while locked even the
// correct passcode is refused.
func TeacherLogin(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.TeacherLoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	sess, err := middleware.GetSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	state := throttleState(sess)
	now := time.Now().Unix()

	if state.Locked(now) {
		return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.TEACHER_LOCKED,
			fmt.Errorf("locked for %d more seconds", state.Remaining(now)))
	}

	if input.Code == config.Config("TEACHER_PASSCODE") {
		sess.Delete(middleware.KeyTeacherAttempts)
		sess.Delete(middleware.KeyTeacherLockUntil)
		if err := sess.Save(); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		token, err := helper.GenerateRoleToken(constants.RoleTeacher)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		setRoleCookie(c, "teacher_token", token)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"role": constants.RoleTeacher,
			"next": c.Query("next"),
		})
	}

	state = state.Fail(now)
	sess.Set(middleware.KeyTeacherAttempts, state.Attempts)
	sess.Set(middleware.KeyTeacherLockUntil, state.LockUntil)
	if err := sess.Save(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if state.Locked(now) {
		return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.TEACHER_LOCKED,
			fmt.Errorf("locked for %d seconds", constants.TeacherLockSeconds))
	}
	return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSCODE,
		fmt.Errorf("%d attempt(s) left", constants.TeacherMaxAttempts-state.Attempts))
}

// TeacherMe lets the booking form check whether the teacher session is
// still valid before offering the teacher-led flow.
func TeacherMe(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"role": constants.RoleTeacher})
}

func TeacherLogout(c *fiber.Ctx) error {
	clearRoleCookie(c, "teacher_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"loggedOut": true})
}
