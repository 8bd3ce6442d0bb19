package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"kickconnect.net/configs"
	"kickconnect.net/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadHandler stores profile photos on local disk and returns the URL
// path they are served from.
type UploadHandler struct {
	dir string
}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{dir: configs.UploadDir()}
}

const maxUploadBytes = 5 << 20

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// UploadPhoto accepts a multipart "photo" file and writes it under the
// upload directory with a generated name.
func (h *UploadHandler) UploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, errors.New("a photo file is required"))
	}
	if file.Size > maxUploadBytes {
		return errorJSON(c, fiber.StatusBadRequest, errors.New("photo exceeds the 5MB limit"))
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return errorJSON(c, fiber.StatusBadRequest, errors.New("photo must be a jpg, png or gif"))
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		configslog.Log.Error("UploadPhoto: creating upload dir", zap.String("dir", h.dir), zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, errors.New("photo could not be stored"))
	}

	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
		configslog.Log.Error("UploadPhoto: saving file", zap.String("name", name), zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, errors.New("photo could not be stored"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"photoURL": "/uploads/" + name})
}
