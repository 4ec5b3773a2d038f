package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cofounderbase/cofounderbase/internal/models"
	"github.com/cofounderbase/cofounderbase/internal/store"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"type"`
}

// handleAdminLogin gates the admin dashboard. The password check is a single
// string comparison; the session is a JWT with a fixed two-hour expiry.
func (s *Server) handleAdminLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Password == "" || req.Password != s.cfg.Admin.Password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(s.cfg.Admin.SessionTTL).Unix(),
		"iat":  time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	s.logger.Info("Admin authenticated")

	return c.JSON(LoginResponse{
		Token:     tokenString,
		TokenType: "Bearer",
	})
}

// handleAdminListProfiles returns every profile, pending ones included.
func (s *Server) handleAdminListProfiles(c *fiber.Ctx) error {
	profiles, err := s.profiles.ListAll(c.Context())
	if err != nil {
		s.logger.Error("Failed to list profiles", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch profiles",
		})
	}
	return c.JSON(fiber.Map{"profiles": profiles})
}

func (s *Server) handleApproveProfile(c *fiber.Ctx) error {
	if err := s.profiles.Approve(c.Context(), c.Params("id")); err != nil {
		return s.mutationError(c, "Failed to approve profile", err)
	}
	s.directory.Invalidate()
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleFeatureProfile(c *fiber.Ctx) error {
	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := s.profiles.SetFeatured(c.Context(), c.Params("id"), req.Featured); err != nil {
		return s.mutationError(c, "Failed to update featured flag", err)
	}
	s.directory.Invalidate()
	return c.JSON(fiber.Map{"success": true})
}

// handleEditProfile overwrites display fields. Role and the role-specific
// attribute group are immutable.
func (s *Server) handleEditProfile(c *fiber.Ctx) error {
	var req store.DisplayUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := s.profiles.UpdateDisplay(c.Context(), c.Params("id"), req); err != nil {
		return s.mutationError(c, "Failed to update profile", err)
	}
	s.directory.Invalidate()
	return c.JSON(fiber.Map{"success": true})
}

// handleRejectProfile deletes the profile outright; rejection is not a
// status flag.
func (s *Server) handleRejectProfile(c *fiber.Ctx) error {
	if err := s.profiles.Delete(c.Context(), c.Params("id")); err != nil {
		return s.mutationError(c, "Failed to delete profile", err)
	}
	s.directory.Invalidate()
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleAdminListAds(c *fiber.Ctx) error {
	ads, err := s.ads.ListAll(c.Context())
	if err != nil {
		s.logger.Error("Failed to list advertisements", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch advertisements",
		})
	}
	return c.JSON(fiber.Map{"advertisements": ads})
}

func (s *Server) handleCreateAd(c *fiber.Ctx) error {
	var ad models.Advertisement
	if err := c.BodyParser(&ad); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if ad.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	created, err := s.ads.Insert(c.Context(), ad)
	if err != nil {
		s.logger.Error("Failed to create advertisement", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create advertisement",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"advertisement": created})
}

func (s *Server) handleUpdateAd(c *fiber.Ctx) error {
	var ad models.Advertisement
	if err := c.BodyParser(&ad); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	ad.ID = c.Params("id")
	if err := s.ads.Update(c.Context(), ad); err != nil {
		return s.mutationError(c, "Failed to update advertisement", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleToggleAd(c *fiber.Ctx) error {
	ad, err := s.ads.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.mutationError(c, "Failed to toggle advertisement", err)
	}
	if err := s.ads.SetActive(c.Context(), ad.ID, !ad.IsActive); err != nil {
		return s.mutationError(c, "Failed to toggle advertisement", err)
	}
	return c.JSON(fiber.Map{"success": true, "is_active": !ad.IsActive})
}

func (s *Server) handleDeleteAd(c *fiber.Ctx) error {
	if err := s.ads.Delete(c.Context(), c.Params("id")); err != nil {
		return s.mutationError(c, "Failed to delete advertisement", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleGetAutoApprove(c *fiber.Ctx) error {
	enabled, err := s.settings.GetBool(c.Context(), models.SettingAutoApprove, true)
	if err != nil {
		s.logger.Error("Failed to read auto-approve setting", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read setting",
		})
	}
	return c.JSON(fiber.Map{models.SettingAutoApprove: enabled})
}

func (s *Server) handleSetAutoApprove(c *fiber.Ctx) error {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := s.settings.SetBool(c.Context(), models.SettingAutoApprove, req.Enabled); err != nil {
		s.logger.Error("Failed to write auto-approve setting", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to write setting",
		})
	}
	return c.JSON(fiber.Map{"success": true, models.SettingAutoApprove: req.Enabled})
}

func (s *Server) mutationError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	s.logger.Error(msg, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}
