package handler

import (
	"errors"

	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetTickets lists reservations of one booking type, newest first.
func GetTickets(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.FilterTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	query := db.Model(&model.Ticket{}).Where("type = ?", input.Type)
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var tickets model.Tickets
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       tickets,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

func GetTicketById(c *fiber.Ctx) error {
	db := database.DB

	var ticket model.Ticket
	if err := db.First(&ticket, "id = ?", c.Params("ticketId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetTicketQR renders the ticket code as a PNG QR for check-in at the door.
func GetTicketQR(c *fiber.Ctx) error {
	db := database.DB

	var ticket model.Ticket
	if err := db.First(&ticket, "id = ?", c.Params("ticketId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	png, err := utils.GenerateQRCode(ticket.ID, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// DeleteTicket removes one reservation (self-service or admin).
func DeleteTicket(c *fiber.Ctx) error {
	db := database.DB
	ticketId := c.Params("ticketId")

	result := db.Delete(&model.Ticket{}, "id = ?", ticketId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, errors.New("no such ticket"))
	}

	PublishReservationEvent(model.ReservationEvent{Action: "deleted", TicketId: ticketId})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": ticketId})
}

// AdminSetTicketStatus overwrites the status column. The target was already
// checked against the known statuses; transitions are admin judgement and
// are not constrained further.
func AdminSetTicketStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.SetTicketStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	ticketId := c.Params("ticketId")

	result := db.Model(&model.Ticket{}).Where("id = ?", ticketId).Update("status", input.Status)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, errors.New("no such ticket"))
	}

	PublishReservationEvent(model.ReservationEvent{
		Action:   "status_changed",
		TicketId: ticketId,
		Status:   input.Status,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": ticketId, "status": input.Status})
}

// ExportMovieReservations streams the per-movie reservation list as CSV for
// offline use at the door.
func ExportMovieReservations(c *fiber.Ctx) error {
	db := database.DB
	movieId := c.Params("movieId")

	var tickets []model.Ticket
	if err := db.Where("movie_id = ?", movieId).
		Order("created_at ASC").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	data, err := utils.ReservationCSV(tickets)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reservations_`+movieId+`.csv"`)
	return c.Send(data)
}
