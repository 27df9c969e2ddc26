package helper

import (
	"fmt"
	"strings"
	"time"

	"club_cinema/constants"
	"club_cinema/model"

	"gorm.io/gorm"
)

func typeDigit(bookType string) string {
	switch bookType {
	case constants.BookTypeNormal:
		return "1"
	case constants.BookTypeGroup:
		return "2"
	case constants.BookTypeTeacher:
		return "3"
	default:
		return "9"
	}
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// dateDigits reduces a YYYY-MM-DD string to "YYMMDD". Malformed input is
// handled by splitting on '-' and zero-padding, never by failing: the code
// must always come out, even from a bad form value.
func dateDigits(date string) string {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("060102")
	}

	parts := strings.Split(date, "-")
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	yy := parts[0]
	if len(yy) > 2 {
		yy = yy[len(yy)-2:]
	}
	return yy + pad2(parts[1]) + pad2(parts[2])
}

// TicketCodeBase builds the collision-free base: type digit, 2-digit year,
// month+day, then the representative student id. Teacher-led bookings never
// carry the student id, whether or not one was supplied.
func TicketCodeBase(bookType, date, studentId string) string {
	tail := studentId
	if bookType == constants.BookTypeTeacher {
		tail = ""
	}
	return typeDigit(bookType) + dateDigits(date) + tail
}

// GenerateTicketCode returns the base code, or the first "-2", "-3", …
// suffixed variant not yet taken. exists reports whether a candidate is
// already in the ledger. The caller must hold the booking lock across this
// check and the following insert.
func GenerateTicketCode(exists func(id string) bool, bookType, date, studentId string) string {
	base := TicketCodeBase(bookType, date, studentId)
	result := base
	i := 2

	for exists(result) {
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

// GenerateTicketCodeTx is the ledger-bound variant used by the booking flow.
func GenerateTicketCodeTx(tx *gorm.DB, bookType, date, studentId string) string {
	return GenerateTicketCode(func(id string) bool {
		var count int64
		tx.Model(&model.Ticket{}).Where("id = ?", id).Count(&count)
		return count > 0
	}, bookType, date, studentId)
}
