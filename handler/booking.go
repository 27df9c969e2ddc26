package handler

import (
	"errors"
	"strings"
	"sync"

	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/helper"
	"club_cinema/middleware"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// bookingMu serializes ticket-code allocation and insertion. The code
// uniqueness check and the insert must not interleave between requests, or
// two bookings could be handed the same code.
var bookingMu sync.Mutex

// GetConsent reports the session's consent state and the next step to
// acknowledge.
func GetConsent(c *fiber.Ctx) error {
	sess, err := middleware.GetSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	state, _ := sess.Get(middleware.KeyConsentState).(string)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"state": state,
		"next":  helper.NextConsentStep(state),
	})
}

// Acknowledge advances the consent state machine by one step. The steps
// must be taken in order: rules first, then privacy.
func Acknowledge(c *fiber.Ctx) error {
	type AgreeInput struct {
		Agree bool `json:"agree"`
	}

	step := c.Params("step")
	var input AgreeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
	}
	if !input.Agree {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CONSENT_REQUIRED, errors.New("agreement not given"))
	}

	sess, err := middleware.GetSession(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	state, _ := sess.Get(middleware.KeyConsentState).(string)
	next, ok := helper.AdvanceConsent(state, step)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CONSENT_REQUIRED, errors.New("step out of order: "+step))
	}

	sess.Set(middleware.KeyConsentState, next)
	if err := sess.Save(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"state": next,
		"next":  helper.NextConsentStep(next),
		"rtype": c.Query("rtype"),
	})
}

// CreateReservation admits one booking: per-type field validation, schedule
// lookup, ticket-code allocation and a single ledger insert.
func CreateReservation(c *fiber.Ctx) error {
	rtype, _ := c.Locals("rtype").(string)
	input, ok := c.Locals("input").(model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	if err := helper.ValidateReservation(rtype, input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	db := database.DB

	var sched model.ScheduleEntry
	if err := db.First(&sched, "date = ?", input.Date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	movie := helper.GetMovie(db, input.MovieId)

	var ticket model.Ticket
	copier.Copy(&ticket, &input)
	ticket.Type = rtype
	ticket.MovieId = movie.ID
	ticket.MovieTitle = movie.Title
	ticket.Date = sched.Date
	ticket.Time = sched.Time
	ticket.Hall = sched.Hall
	ticket.Status = helper.InitialStatus(rtype)

	if rtype == constants.BookTypeGroup {
		members := helper.SplitMembers(input.Companions)
		memberIds := helper.SplitMembers(input.CompanionIds)
		ticket.GroupSize = 1 + len(members)
		ticket.MemberNames = strings.Join(members, ", ")
		ticket.MemberIds = strings.Join(memberIds, ", ")
	}

	bookingMu.Lock()
	defer bookingMu.Unlock()

	err := db.Transaction(func(tx *gorm.DB) error {
		ticket.ID = helper.GenerateTicketCodeTx(tx, rtype, input.Date, input.StudentId)
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if ticket.Status == constants.StatusPending {
		helper.SendPendingNotice(ticket)
	}
	PublishReservationEvent(model.ReservationEvent{
		Action:   "created",
		TicketId: ticket.ID,
		Type:     ticket.Type,
		Status:   ticket.Status,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}
