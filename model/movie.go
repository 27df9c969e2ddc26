package model

// Movie is one catalog entry. The catalog is a layered lookup: a static
// built-in base list overlaid by admin-added rows, override wins by id.
type Movie struct {
	ID       string `gorm:"primaryKey;size:16" json:"id"`
	Title    string `gorm:"not null;index" json:"title"`
	Rating   string `gorm:"size:10" json:"rating"`
	Duration int    `json:"duration"`
	Genre    string `gorm:"size:50" json:"genre"`
	Poster   string `gorm:"size:255" json:"poster"`
}

type Movies []Movie

type CreateMovieInput struct {
	Title    string `json:"title" validate:"required"`
	Rating   string `json:"rating"`
	Duration int    `json:"duration" validate:"omitempty,gt=0"`
	Genre    string `json:"genre"`
	Poster   string `json:"poster" validate:"omitempty,url"`
}
