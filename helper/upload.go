package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"club_cinema/config"
	"club_cinema/constants"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedPosterExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

func cloudinaryConfigured() bool {
	return config.Config("CLOUDINARY_CLOUD_NAME") != "" &&
		config.Config("CLOUDINARY_API_KEY") != "" &&
		config.Config("CLOUDINARY_API_SECRET") != ""
}

// SavePoster stores an uploaded poster and returns the URL to persist on the
// movie row. Cloudinary is used when configured, the local upload directory
// otherwise. The stored filename never reuses the client's name.
func SavePoster(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPosterExts[ext] {
		return "", errors.New(constants.UNSUPPORTED_FILE_TYPE)
	}

	if cloudinaryConfigured() {
		return uploadToCloudinary(file)
	}

	dir := config.Config("UPLOAD_DIR")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

func uploadToCloudinary(file *multipart.FileHeader) (string, error) {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return "", err
	}

	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()

	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "movies/posters",
		PublicID:     fmt.Sprintf("poster_%d", time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}

	return result.SecureURL, nil
}
