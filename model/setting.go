package model

// Setting is a generic key→text row. Created lazily on first write,
// overwritten in place afterwards.
type Setting struct {
	Key   string `gorm:"primaryKey;size:50" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

type UpdateSettingInput struct {
	Value string `json:"value"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
