package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"club_cinema/model"
)

// ReservationCSVHeader is the fixed column order of the export. Offline
// consumers depend on it, so new columns go at the end only.
var ReservationCSVHeader = []string{
	"id", "type", "status", "date", "time", "hall",
	"student_id", "student_name", "group_name", "group_size",
	"member_names", "teacher_name", "class_info", "created_at",
}

// ReservationCSV encodes tickets as UTF-8 CSV. A BOM is prepended so the
// file opens correctly in Excel with Korean names.
func ReservationCSV(tickets []model.Ticket) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(buf)
	if err := w.Write(ReservationCSVHeader); err != nil {
		return nil, err
	}

	for _, t := range tickets {
		groupSize := ""
		if t.GroupSize > 0 {
			groupSize = strconv.Itoa(t.GroupSize)
		}
		record := []string{
			t.ID, t.Type, t.Status, t.Date, t.Time, t.Hall,
			t.StudentId, t.StudentName, t.GroupName, groupSize,
			t.MemberNames, t.TeacherName, t.ClassInfo,
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
