package handler

import (
	"net/http"
	"testing"

	"club_cinema/config"
	"club_cinema/constants"
	"club_cinema/helper"
	"club_cinema/middleware"
	"club_cinema/validate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func authTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/admin/login", validate.AdminLogin(), AdminLogin)
	app.Post("/teacher/login", validate.TeacherLogin(), TeacherLogin)
	app.Get("/teacher/me", middleware.TeacherRequired(), TeacherMe)
	return app
}

func hasCookie(resp *http.Response, name string) bool {
	for _, ck := range resp.Cookies() {
		if ck.Name == name && ck.Value != "" {
			return true
		}
	}
	return false
}

func expectAdminPasswordRow(t *testing.T, mock sqlmock.Sqlmock, password string) {
	t.Helper()

	hash, err := helper.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	mock.ExpectQuery(`SELECT (.+) FROM "settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow(constants.SettingAdminPassword, hash))
}

func TestAdminLoginWrongPassword(t *testing.T) {
	mock := newMockDB(t)
	app := authTestApp()

	expectAdminPasswordRow(t, mock, "correct-password")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/admin/login",
		fiber.Map{"password": "wrong-password"}), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if hasCookie(resp, "admin_token") {
		t.Error("admin cookie set on failed login")
	}
}

func TestAdminLoginSuccess(t *testing.T) {
	mock := newMockDB(t)
	app := authTestApp()

	expectAdminPasswordRow(t, mock, "correct-password")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/admin/login",
		fiber.Map{"password": "correct-password"}), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !hasCookie(resp, "admin_token") {
		t.Error("admin cookie missing after login")
	}
}

func TestTeacherLoginSuccess(t *testing.T) {
	app := authTestApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/teacher/login",
		fiber.Map{"code": config.Config("TEACHER_PASSCODE")}), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !hasCookie(resp, "teacher_token") {
		t.Error("teacher cookie missing after login")
	}
}

func TestTeacherMeRequiresTeacherSession(t *testing.T) {
	app := authTestApp()

	// Anonymous sessions are turned away.
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/teacher/me", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want 401", resp.StatusCode)
	}

	// A fresh teacher login passes the gate.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/teacher/login",
		fiber.Map{"code": config.Config("TEACHER_PASSCODE")}), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var token *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "teacher_token" {
			token = ck
		}
	}
	if token == nil {
		t.Fatal("login did not set the teacher cookie")
	}

	req := jsonRequest(t, http.MethodGet, "/teacher/me", nil)
	req.AddCookie(token)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", resp.StatusCode)
	}
}

func TestTeacherLoginLockout(t *testing.T) {
	app := authTestApp()

	var cookie *http.Cookie

	// Failures 1-4 come back unauthorized; the session counts them.
	for i := 1; i < constants.TeacherMaxAttempts; i++ {
		req := jsonRequest(t, http.MethodPost, "/teacher/login", fiber.Map{"code": "wrong"})
		if cookie != nil {
			req.AddCookie(cookie)
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("failure %d status = %d, want 401", i, resp.StatusCode)
		}
		if ck := sessionCookie(resp); ck != nil {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatal("failed attempts did not set a session cookie")
	}

	// The 5th failure locks the session.
	req := jsonRequest(t, http.MethodPost, "/teacher/login", fiber.Map{"code": "wrong"})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("locking failure status = %d, want 429", resp.StatusCode)
	}

	// While locked, even the correct passcode is refused.
	req = jsonRequest(t, http.MethodPost, "/teacher/login",
		fiber.Map{"code": config.Config("TEACHER_PASSCODE")})
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("locked correct-code status = %d, want 429", resp.StatusCode)
	}
	if hasCookie(resp, "teacher_token") {
		t.Error("teacher cookie issued while locked")
	}
}
