package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "ayurveda/internal/log"
	"ayurveda/internal/validate"
)

const maxImageSize = 5 << 20 // 5 MB

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadHandler stores product images on disk under Dir. Stored names
// are always server-generated, so a crafted client filename can never
// escape the directory.
type UploadHandler struct {
	Dir string
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No image file provided"})
	}
	if file.Size > maxImageSize {
		applog.Security(c, "upload.toolarge", map[string]any{"size": file.Size})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Image must be smaller than 5MB"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	wantMime, ok := imageTypes[ext]
	if !ok {
		applog.Security(c, "upload.badext", map[string]any{"filename": file.Filename})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Only JPEG, PNG, GIF and WebP images are allowed"})
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != wantMime && !strings.HasPrefix(ct, "image/") {
		applog.Security(c, "upload.badmime", map[string]any{"contentType": ct})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Only JPEG, PNG, GIF and WebP images are allowed"})
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		applog.Error(c, "upload.mkdir", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving image"})
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	if err := c.SaveFile(file, filepath.Join(h.Dir, name)); err != nil {
		applog.Error(c, "upload.save", err, map[string]any{"filename": name})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving image"})
	}

	applog.Audit(c, "upload.image", map[string]any{"filename": name, "size": file.Size})
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Image uploaded successfully",
		"imagePath": "/images/" + name,
		"filename":  name,
	})
}

func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	name, ok := validate.Filename(c.Params("filename"))
	if !ok {
		applog.Security(c, "upload.delete.badname", map[string]any{"filename": name})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid filename"})
	}
	if err := os.Remove(filepath.Join(h.Dir, name)); err != nil {
		if os.IsNotExist(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Image not found"})
		}
		applog.Error(c, "upload.delete", err, map[string]any{"filename": name})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error deleting image"})
	}
	applog.Audit(c, "upload.delete", map[string]any{"filename": name})
	return c.JSON(fiber.Map{"success": true, "message": "Image deleted successfully"})
}
