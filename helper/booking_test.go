package helper

import (
	"reflect"
	"testing"

	"club_cinema/constants"
	"club_cinema/model"
)

func TestSplitMembers(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"commas", "김철수, 이영희,박민수", []string{"김철수", "이영희", "박민수"}},
		{"newlines and tabs", "김철수\n이영희\t박민수", []string{"김철수", "이영희", "박민수"}},
		{"duplicates dropped", "김철수, 김철수, 이영희", []string{"김철수", "이영희"}},
		{"empty", "", nil},
		{"only separators", " ,\n\t ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitMembers(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitMembers(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestValidateReservationNormal(t *testing.T) {
	ok := model.CreateReservationInput{Date: "2025-10-18", StudentId: "20413", StudentName: "이재권"}
	if err := ValidateReservation(constants.BookTypeNormal, ok); err != nil {
		t.Fatalf("valid normal booking rejected: %v", err)
	}

	missingId := ok
	missingId.StudentId = "  "
	if err := ValidateReservation(constants.BookTypeNormal, missingId); err == nil {
		t.Fatal("normal booking without student id admitted")
	}

	missingName := ok
	missingName.StudentName = ""
	if err := ValidateReservation(constants.BookTypeNormal, missingName); err == nil {
		t.Fatal("normal booking without student name admitted")
	}
}

func TestValidateReservationGroup(t *testing.T) {
	base := model.CreateReservationInput{
		Date: "2025-10-18", StudentId: "20413", StudentName: "이재권",
		GroupName: "영화부", Companions: "김철수, 이영희",
	}
	if err := ValidateReservation(constants.BookTypeGroup, base); err != nil {
		t.Fatalf("valid group booking rejected: %v", err)
	}
	if got := GroupSize(base.Companions); got != 3 {
		t.Fatalf("GroupSize = %d, want 3", got)
	}

	solo := base
	solo.Companions = ""
	if err := ValidateReservation(constants.BookTypeGroup, solo); err == nil {
		t.Fatal("group of one admitted")
	}

	unnamed := base
	unnamed.GroupName = ""
	if err := ValidateReservation(constants.BookTypeGroup, unnamed); err == nil {
		t.Fatal("group booking without group name admitted")
	}
}

func TestValidateReservationTeacher(t *testing.T) {
	in := model.CreateReservationInput{Date: "2025-10-18", TeacherName: "박선생"}
	if err := ValidateReservation(constants.BookTypeTeacher, in); err != nil {
		t.Fatalf("teacher booking without student fields rejected: %v", err)
	}

	in.TeacherName = ""
	if err := ValidateReservation(constants.BookTypeTeacher, in); err == nil {
		t.Fatal("teacher booking without teacher name admitted")
	}

	if err := ValidateReservation("walkin", in); err == nil {
		t.Fatal("unknown booking type admitted")
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(constants.BookTypeNormal); got != constants.StatusApproved {
		t.Errorf("normal initial status = %q, want approved", got)
	}
	if got := InitialStatus(constants.BookTypeGroup); got != constants.StatusPending {
		t.Errorf("group initial status = %q, want pending", got)
	}
	if got := InitialStatus(constants.BookTypeTeacher); got != constants.StatusPending {
		t.Errorf("teacher initial status = %q, want pending", got)
	}
}
