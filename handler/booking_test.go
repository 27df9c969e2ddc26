package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"club_cinema/middleware"
	"club_cinema/validate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func bookingTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/reserve/:rtype", validate.BookType(), validate.CreateReservation(), CreateReservation)
	return app
}

func TestCreateReservationRejectsUnknownType(t *testing.T) {
	mock := newMockDB(t)
	app := bookingTestApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reserve/walkin", fiber.Map{
		"date": "2025-10-18", "studentId": "20413", "studentName": "이재권",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database traffic: %v", err)
	}
}

func TestCreateReservationMissingStudentFields(t *testing.T) {
	mock := newMockDB(t)
	app := bookingTestApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reserve/normal", fiber.Map{
		"date": "2025-10-18", "movieId": "m1",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database traffic: %v", err)
	}
}

func TestCreateReservationUnknownDate(t *testing.T) {
	mock := newMockDB(t)
	app := bookingTestApp()

	// No schedule row for the requested date.
	mock.ExpectQuery(`SELECT (.+) FROM "schedule"`).
		WillReturnRows(sqlmock.NewRows([]string{"date"}))

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reserve/normal", fiber.Map{
		"date": "2099-01-01", "movieId": "m1",
		"studentId": "20413", "studentName": "이재권",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// consentTestApp mounts the consent endpoints in front of a stub booking
// handler so the gate can be exercised without touching the ledger.
func consentTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/consent", GetConsent)
	app.Post("/consent/:step", Acknowledge)
	app.Post("/reserve/:rtype", middleware.ConsentRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestConsentGateBlocksUntilBothSteps(t *testing.T) {
	app := consentTestApp()

	// No consent yet: the gate refuses and names the first step.
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reserve/normal", fiber.Map{}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status without consent = %d, want 403", resp.StatusCode)
	}
	var gate struct {
		Step  string `json:"step"`
		Rtype string `json:"rtype"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gate); err != nil {
		t.Fatalf("decoding gate response: %v", err)
	}
	if gate.Step != "rules" || gate.Rtype != "normal" {
		t.Errorf("gate = %+v, want step rules, rtype normal", gate)
	}

	// Privacy before rules is out of order.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/consent/privacy", fiber.Map{"agree": true}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("privacy-first status = %d, want 400", resp.StatusCode)
	}

	// Rules acknowledged; keep the session cookie for the rest of the flow.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/consent/rules", fiber.Map{"agree": true}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rules ack status = %d, want 200", resp.StatusCode)
	}
	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatal("rules ack did not set a session cookie")
	}

	// Rules alone is not enough.
	req := jsonRequest(t, http.MethodPost, "/reserve/normal", fiber.Map{})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status after rules only = %d, want 403", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&gate); err != nil {
		t.Fatalf("decoding gate response: %v", err)
	}
	if gate.Step != "privacy" {
		t.Errorf("next step after rules = %q, want privacy", gate.Step)
	}

	// Privacy acknowledged in order completes the gate.
	req = jsonRequest(t, http.MethodPost, "/consent/privacy", fiber.Map{"agree": true})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("privacy ack status = %d, want 200", resp.StatusCode)
	}

	req = jsonRequest(t, http.MethodPost, "/reserve/normal", fiber.Map{})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status with full consent = %d, want 200", resp.StatusCode)
	}
}

func TestAcknowledgeRequiresAgreement(t *testing.T) {
	app := consentTestApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/consent/rules", fiber.Map{"agree": false}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
