package model

import "time"

// Ticket is one reservation. The primary key is the human-legible ticket
// code derived from booking type, show date and representative student id.
type Ticket struct {
	ID         string `gorm:"primaryKey;size:32" json:"id"`
	Type       string `gorm:"size:10;not null;index" json:"type"`
	MovieId    string `gorm:"size:16;not null" json:"movieId"`
	MovieTitle string `gorm:"not null" json:"movieTitle"`

	// Snapshot of the schedule entry at booking time.
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:8" json:"time"`
	Hall string `gorm:"size:50" json:"hall"`

	Status string `gorm:"size:10;not null;default:'pending';index" json:"status"`

	StudentId   string `gorm:"size:20" json:"studentId"`
	StudentName string `gorm:"size:50" json:"studentName"`

	GroupName   string `gorm:"size:100" json:"groupName,omitempty"`
	GroupSize   int    `json:"groupSize,omitempty"`
	MemberNames string `gorm:"type:text" json:"memberNames,omitempty"`
	MemberIds   string `gorm:"type:text" json:"memberIds,omitempty"`

	TeacherName string `gorm:"size:50" json:"teacherName,omitempty"`
	ClassInfo   string `gorm:"size:100" json:"classInfo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

type Tickets []Ticket

type CreateReservationInput struct {
	MovieId     string `json:"movieId"`
	Date        string `json:"date" validate:"required"`
	StudentId   string `json:"studentId"`
	StudentName string `json:"studentName"`
	GroupName   string `json:"groupName"`
	// Companions and CompanionIds are free text, one member per
	// comma/whitespace/newline-separated token.
	Companions   string `json:"companions"`
	CompanionIds string `json:"companionIds"`
	TeacherName  string `json:"teacherName"`
	ClassInfo    string `json:"classInfo"`
}

type SetTicketStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type FilterTicketInput struct {
	Pagination
	Type   string `query:"tab" validate:"omitempty,oneof=normal group teacher"`
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
}
