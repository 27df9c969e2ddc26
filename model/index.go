package model

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `query:"limit"`
	Page  *int `query:"page"`
}

type LoginInput struct {
	Password string `json:"password" validate:"required"`
}

type TeacherLoginInput struct {
	Code string `json:"code" validate:"required"`
}

// ReservationEvent is published to the admin live feed whenever the
// ledger changes.
type ReservationEvent struct {
	Action   string `json:"action"` // created / status_changed / deleted
	TicketId string `json:"ticketId"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status,omitempty"`
}
