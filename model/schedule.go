package model

// ScheduleEntry maps a calendar date to one showing. At most one showing
// per date; writes upsert by date.
type ScheduleEntry struct {
	Date string `gorm:"primaryKey;size:10" json:"date"`
	Time string `gorm:"size:8;not null" json:"time"`
	Hall string `gorm:"size:50;not null" json:"hall"`
}

func (ScheduleEntry) TableName() string {
	return "schedule"
}

type UpsertScheduleInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required"`
	Hall string `json:"hall" validate:"required"`
}
