package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"strconv"

	"club_cinema/config"
	"club_cinema/model"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

func mailConfigured() bool {
	return config.Config("SMTP_HOST") != "" && config.Config("ADMIN_EMAIL") != ""
}

func smtpPort() int {
	port, err := strconv.Atoi(config.Config("SMTP_PORT"))
	if err != nil {
		return 587
	}
	return port
}

// SendPendingNotice mails the admin when a group or teacher-led reservation
// arrives for review. Async so the booking response is not delayed.
func SendPendingNotice(t model.Ticket) {
	if !mailConfigured() {
		return
	}
	go func() {
		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", config.Config("ADMIN_EMAIL"))
		m.SetHeader("Subject", "검토 대기 예약 "+t.ID)
		m.SetBody("text/plain", fmt.Sprintf(
			"새 %s 예약이 접수되었습니다.\n영화: %s\n날짜: %s %s (%s)\n예약번호: %s",
			t.Type, t.MovieTitle, t.Date, t.Time, t.Hall, t.ID))

		d := gomail.NewDialer(config.Config("SMTP_HOST"), smtpPort(),
			config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("pending notice mail failed: %v", err)
		}
	}()
}

// SendPendingDigest mails the daily summary of reservations still waiting
// for review.
func SendPendingDigest(tickets []model.Ticket) {
	if !mailConfigured() || len(tickets) == 0 {
		return
	}

	body := fmt.Sprintf("검토 대기 중인 예약 %d건:\n\n", len(tickets))
	for _, t := range tickets {
		body += fmt.Sprintf("- %s %s %s (%s)\n", t.ID, t.Type, t.Date, t.MovieTitle)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", config.Config("ADMIN_EMAIL"))
	m.SetHeader("Subject", "예약 검토 대기 현황")
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(config.Config("SMTP_HOST"), smtpPort(),
		config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("digest mail failed: %v", err)
	}
}

// SendPasswordChangedNotice tells the admin address the panel password was
// changed, so a hijacked session cannot rotate it silently.
func SendPasswordChangedNotice() {
	if !mailConfigured() {
		return
	}
	go func() {
		e := email.NewEmail()
		e.From = config.Config("SMTP_FROM")
		e.To = []string{config.Config("ADMIN_EMAIL")}
		e.Subject = "관리자 비밀번호 변경 알림"
		e.Text = []byte("관리자 비밀번호가 방금 변경되었습니다. 본인이 아니라면 즉시 서버 관리자에게 연락하세요.")

		host := config.Config("SMTP_HOST")
		addr := fmt.Sprintf("%s:%d", host, smtpPort())
		auth := smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), host)
		if err := e.Send(addr, auth); err != nil {
			log.Printf("password change notice failed: %v", err)
		}
	}()
}
