package handler

import (
	"net/http"
	"testing"

	"club_cinema/validate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func scheduleTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/admin/schedule", validate.UpsertSchedule(), UpsertSchedule)
	app.Delete("/admin/schedule/:date", DeleteSchedule)
	return app
}

func TestUpsertScheduleRejectsBadDate(t *testing.T) {
	mock := newMockDB(t)
	app := scheduleTestApp()

	for _, date := range []string{"18-10-2025", "2025/10/18", "tomorrow", ""} {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/admin/schedule",
			fiber.Map{"date": date, "time": "16:00", "hall": "시청각실"}))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("date %q status = %d, want 400", date, resp.StatusCode)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database traffic: %v", err)
	}
}

func TestDeleteScheduleUnknownDate(t *testing.T) {
	mock := newMockDB(t)
	app := scheduleTestApp()

	mock.ExpectExec(`DELETE FROM "schedule"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/admin/schedule/2099-01-01", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
