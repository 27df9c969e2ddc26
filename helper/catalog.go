package helper

import (
	"fmt"
	"sort"

	"club_cinema/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// BaseMovies is the built-in seed catalog. Admin-added rows overlay it;
// a row with the same id wins over the seed entry.
var BaseMovies = model.Movies{
	{ID: "m1", Title: "인사이드 아웃 2", Rating: "ALL", Duration: 96, Genre: "애니메이션", Poster: "https://picsum.photos/seed/m1/400/600"},
	{ID: "m2", Title: "탑건: 매버릭", Rating: "12", Duration: 130, Genre: "액션", Poster: "https://picsum.photos/seed/m2/400/600"},
	{ID: "m3", Title: "리틀 포레스트", Rating: "ALL", Duration: 103, Genre: "드라마", Poster: "https://picsum.photos/seed/m3/400/600"},
	{ID: "m4", Title: "극한직업", Rating: "15", Duration: 111, Genre: "코미디", Poster: "https://picsum.photos/seed/m4/400/600"},
}

// OverlayMovies merges the base list with admin rows: base order first with
// overrides applied in place, then remaining admin rows sorted by title.
func OverlayMovies(base model.Movies, added model.Movies) model.Movies {
	override := make(map[string]model.Movie, len(added))
	for _, m := range added {
		override[m.ID] = m
	}

	merged := make(model.Movies, 0, len(base)+len(added))
	for _, m := range base {
		if o, ok := override[m.ID]; ok {
			merged = append(merged, o)
			delete(override, m.ID)
			continue
		}
		merged = append(merged, m)
	}

	rest := make(model.Movies, 0, len(override))
	for _, m := range override {
		rest = append(rest, m)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Title < rest[j].Title })

	return append(merged, rest...)
}

func LoadAllMovies(db *gorm.DB) model.Movies {
	var added model.Movies
	db.Order("title").Find(&added)
	return OverlayMovies(BaseMovies, added)
}

// GetMovie resolves a catalog id. An unknown id falls back to the first
// catalog entry so a stale booking link still lands on a real movie.
func GetMovie(db *gorm.DB, id string) model.Movie {
	movies := LoadAllMovies(db)
	for _, m := range movies {
		if m.ID == id {
			return m
		}
	}
	if len(movies) > 0 {
		return movies[0]
	}
	return model.Movie{ID: "unknown", Title: "알 수 없는 영화", Rating: "-"}
}

// GenerateUniqueMovieId derives a short id from the title, suffixing until
// it clashes with neither the seed list nor an admin row.
func GenerateUniqueMovieId(tx *gorm.DB, title string) string {
	base := slug.Make(title)
	if base == "" {
		base = uuid.New().String()[:6]
	}
	if len(base) > 12 {
		base = base[:12]
	}

	taken := func(id string) bool {
		for _, m := range BaseMovies {
			if m.ID == id {
				return true
			}
		}
		var count int64
		tx.Model(&model.Movie{}).Where("id = ?", id).Count(&count)
		return count > 0
	}

	result := base
	i := 1
	for taken(result) {
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
