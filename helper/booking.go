package helper

import (
	"errors"
	"regexp"
	"strings"

	"club_cinema/constants"
	"club_cinema/model"
)

var memberSeparators = regexp.MustCompile(`[,\n\r\t ]+`)

// SplitMembers normalizes a free-text companion list: split on
// comma/whitespace/newline, trim, drop duplicates keeping first occurrence.
func SplitMembers(raw string) []string {
	parts := memberSeparators.Split(strings.TrimSpace(raw), -1)
	seen := make(map[string]bool, len(parts))
	var members []string

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		members = append(members, p)
	}

	return members
}

// GroupSize is the representative plus every listed companion.
func GroupSize(companions string) int {
	return 1 + len(SplitMembers(companions))
}

// ValidateReservation enforces the per-type required fields. It does not
// touch the schedule; the date lookup belongs to the booking handler.
func ValidateReservation(bookType string, in model.CreateReservationInput) error {
	switch bookType {
	case constants.BookTypeNormal:
		if strings.TrimSpace(in.StudentId) == "" {
			return errors.New(constants.MISSING_STUDENT_ID)
		}
		if strings.TrimSpace(in.StudentName) == "" {
			return errors.New(constants.MISSING_STUDENT_NAME)
		}
	case constants.BookTypeGroup:
		if strings.TrimSpace(in.StudentId) == "" {
			return errors.New(constants.MISSING_STUDENT_ID)
		}
		if strings.TrimSpace(in.StudentName) == "" {
			return errors.New(constants.MISSING_STUDENT_NAME)
		}
		if strings.TrimSpace(in.GroupName) == "" || GroupSize(in.Companions) < 2 {
			return errors.New(constants.MISSING_GROUP_FIELDS)
		}
	case constants.BookTypeTeacher:
		if strings.TrimSpace(in.TeacherName) == "" {
			return errors.New(constants.MISSING_TEACHER_NAME)
		}
	default:
		return errors.New(constants.INVALID_BOOKING_TYPE)
	}
	return nil
}

// InitialStatus: individual bookings are admitted immediately, group and
// teacher-led ones wait for admin review.
func InitialStatus(bookType string) string {
	if bookType == constants.BookTypeNormal {
		return constants.StatusApproved
	}
	return constants.StatusPending
}
