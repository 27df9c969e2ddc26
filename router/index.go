package router

import (
	"log"

	"club_cinema/config"
	"club_cinema/handler"
	"club_cinema/middleware"
	"club_cinema/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/healthz", handler.Healthz)
	app.Static("/uploads", config.Config("UPLOAD_DIR"))

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	movie := v1.Group("/movie")
	movie.Get("/", handler.GetMovies)
	movie.Get("/:movieId", handler.GetMovieById)

	v1.Get("/schedule", handler.GetSchedule)
	v1.Get("/rules", handler.GetRules)
	v1.Get("/privacy", handler.GetPrivacy)

	consent := v1.Group("/consent")
	consent.Get("/", handler.GetConsent)
	consent.Post("/:step", handler.Acknowledge)

	v1.Post("/reserve/:rtype",
		validate.BookType(),
		middleware.TeacherRequiredForType(),
		middleware.ConsentRequired(),
		validate.CreateReservation(),
		handler.CreateReservation)

	ticket := v1.Group("/ticket")
	ticket.Get("/", validate.FilterTickets(), handler.GetTickets)
	ticket.Get("/:ticketId", handler.GetTicketById)
	ticket.Get("/:ticketId/qr", handler.GetTicketQR)
	ticket.Delete("/:ticketId", handler.DeleteTicket)

	teacher := v1.Group("/teacher")
	teacher.Post("/login", validate.TeacherLogin(), handler.TeacherLogin)
	teacher.Get("/me", middleware.TeacherRequired(), handler.TeacherMe)
	teacher.Get("/logout", handler.TeacherLogout)

	admin := v1.Group("/admin", logger.New())
	admin.Post("/login", validate.AdminLogin(), handler.AdminLogin)
	admin.Get("/logout", handler.AdminLogout)

	admin.Get("/stats", middleware.AdminRequired(), handler.GetAdminStats)
	admin.Get("/feed", middleware.AdminRequired(), websocket.New(handler.ReservationFeed))
	admin.Post("/change-password", middleware.AdminRequired(), validate.ChangePassword(), handler.ChangeAdminPassword)

	admin.Patch("/tickets/:ticketId/status", middleware.AdminRequired(), validate.SetTicketStatus(), handler.AdminSetTicketStatus)
	admin.Delete("/tickets/:ticketId", middleware.AdminRequired(), handler.DeleteTicket)

	admin.Post("/movies", middleware.AdminRequired(), validate.CreateMovie(), handler.CreateMovie)
	admin.Delete("/movies/:movieId", middleware.AdminRequired(), handler.DeleteMovie)
	admin.Post("/movies/:movieId/poster", middleware.AdminRequired(), handler.UploadPoster)
	admin.Get("/movies/:movieId/reservations.csv", middleware.AdminRequired(), handler.ExportMovieReservations)

	admin.Post("/schedule", middleware.AdminRequired(), validate.UpsertSchedule(), handler.UpsertSchedule)
	admin.Delete("/schedule/:date", middleware.AdminRequired(), handler.DeleteSchedule)

	admin.Put("/settings/:key", middleware.AdminRequired(), validate.UpdateSetting(), handler.UpdateSetting)

	// Catch-all: log the attempted path together with the route table so a
	// misrouted client can be diagnosed from the server log.
	app.Use(func(c *fiber.Ctx) error {
		log.Printf("unknown route: %s %s", c.Method(), c.Path())
		for _, r := range app.GetRoutes(true) {
			log.Printf(" - %-7s %s", r.Method, r.Path)
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "NOT_FOUND",
			"path":    c.Path(),
		})
	})
}
