package handler

import (
	"errors"

	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/helper"
	"club_cinema/model"
	"club_cinema/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetMovies returns the merged catalog: built-in seed list overlaid by
// admin-added rows.
func GetMovies(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, helper.LoadAllMovies(database.DB))
}

func GetMovieById(c *fiber.Ctx) error {
	movie := helper.GetMovie(database.DB, c.Params("movieId"))
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// CreateMovie adds an admin catalog row. An id is derived from the title;
// empty optional fields get the same defaults the club always used.
func CreateMovie(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var movie model.Movie
	copier.Copy(&movie, &input)
	if movie.Rating == "" {
		movie.Rating = "ALL"
	}
	if movie.Duration == 0 {
		movie.Duration = 90
	}
	if movie.Genre == "" {
		movie.Genre = "기타"
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		movie.ID = helper.GenerateUniqueMovieId(tx, movie.Title)
		if movie.Poster == "" {
			movie.Poster = "https://picsum.photos/seed/" + movie.ID + "/400/600"
		}
		return tx.Create(&movie).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

// DeleteMovie removes an admin-added row. Seed entries have no row to
// delete; removing one simply uncovers nothing and reports not found.
func DeleteMovie(c *fiber.Ctx) error {
	db := database.DB
	movieId := c.Params("movieId")

	result := db.Delete(&model.Movie{}, "id = ?", movieId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, errors.New("no such movie row"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": movieId})
}

// UploadPoster stores a poster image for an admin-added movie and points
// the row at the stored URL.
func UploadPoster(c *fiber.Ctx) error {
	db := database.DB
	movieId := c.Params("movieId")

	var movie model.Movie
	if err := db.First(&movie, "id = ?", movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	file, err := c.FormFile("poster")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA, err)
	}

	url, err := helper.SavePoster(c, file)
	if err != nil {
		if err.Error() == constants.UNSUPPORTED_FILE_TYPE {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNSUPPORTED_FILE_TYPE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&movie).Update("poster", url).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": movieId, "poster": url})
}
