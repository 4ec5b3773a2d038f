package api

import (
	"io"

	"github.com/gofiber/fiber/v2"
)

// handleUploadHeadshot stores an optional headshot image and returns its
// public URL. Upload failure is non-fatal to submission: the client may
// still create the profile without an image.
func (s *Server) handleUploadHeadshot(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("headshot")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A headshot file is required",
		})
	}
	if fileHeader.Size > s.cfg.Storage.MaxUpload {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "Headshot exceeds the maximum upload size",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded headshot", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read upload",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("Failed to read uploaded headshot", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read upload",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := s.storage.Store(c.Context(), fileHeader.Filename, data, contentType)
	if err != nil {
		s.logger.Error("Failed to store headshot", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store headshot",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
