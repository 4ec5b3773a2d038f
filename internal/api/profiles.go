package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cofounderbase/cofounderbase/internal/directory"
	"github.com/cofounderbase/cofounderbase/internal/models"
	"github.com/cofounderbase/cofounderbase/internal/store"
)

// queryValues splits a comma-separated multi-value query parameter into the
// dimension's selected option set.
func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// handleListProfiles serves the public directory listing: cached approved
// profiles, normalized, narrowed by the query's filter dimensions, ranked.
func (s *Server) handleListProfiles(c *fiber.Ctx) error {
	filters := directory.FilterState{
		Search:          c.Query("search"),
		Location:        queryValues(c, "location"),
		Industry:        queryValues(c, "industry"),
		Availability:    queryValues(c, "availability"),
		Stage:           queryValues(c, "stage"),
		Experience:      queryValues(c, "experience"),
		InvestmentRange: queryValues(c, "investment_range"),
		InvestmentType:  queryValues(c, "investment_type"),
	}

	profiles := s.directory.Visible(c.Context(), filters)

	// Optional narrowing to a single role.
	if role := strings.ToLower(c.Query("role")); role != "" {
		narrowed := make([]models.Profile, 0, len(profiles))
		for _, p := range profiles {
			if p.Role == role {
				narrowed = append(narrowed, p)
			}
		}
		profiles = narrowed
	}

	return c.JSON(fiber.Map{"profiles": profiles})
}

// handleGetProfile serves a directly-linked profile. When auto-approval is
// off, pending profiles stay hidden from the public view.
func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	profile, err := s.profiles.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Profile not found",
			})
		}
		s.logger.Error("Failed to fetch profile", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch profile",
		})
	}

	if !profile.Approved {
		autoApprove, err := s.settings.GetBool(c.Context(), models.SettingAutoApprove, true)
		if err != nil {
			s.logger.Error("Failed to read auto-approve setting", "error", err)
		}
		if !autoApprove {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Profile not found",
			})
		}
	}

	return c.JSON(fiber.Map{"profile": directory.NormalizeForDisplay(profile)})
}

// handleSubmitProfile accepts the multi-step submission form. The approved
// flag is seeded from the auto-approve setting; a welcome email is queued
// for approved profiles and any queueing failure is logged, never surfaced.
func (s *Server) handleSubmitProfile(c *fiber.Ctx) error {
	var req models.SubmitProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	autoApprove, err := s.settings.GetBool(c.Context(), models.SettingAutoApprove, true)
	if err != nil {
		s.logger.Error("Failed to read auto-approve setting", "error", err)
		autoApprove = true
	}

	profile := req.ToProfile()
	profile.Approved = autoApprove
	profile.CreatedAt = time.Now().UTC()

	inserted, err := s.profiles.Insert(c.Context(), profile)
	if err != nil {
		s.logger.Error("Failed to create profile", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create profile",
		})
	}

	if inserted.Approved {
		job := models.EmailJob{
			ID:         uuid.NewString(),
			Template:   models.EmailTemplateProfileLive,
			Recipient:  inserted.Email,
			FirstName:  inserted.FirstName(),
			ProfileURL: s.profileURL(inserted.ID),
		}
		if err := s.queueEmail(job); err != nil {
			s.logger.Error("Failed to queue welcome email", "error", err, "profileID", inserted.ID)
		}
	}

	s.directory.Invalidate()
	s.logger.Info("Profile submitted", "profileID", inserted.ID, "role", inserted.Role, "approved", inserted.Approved)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"profile": inserted,
		"success": true,
	})
}

// handleContactProfile queues a contact-request email to the profile owner.
func (s *Server) handleContactProfile(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	profile, err := s.profiles.GetByID(c.Context(), c.Params("id"))
	if err != nil || !profile.Approved {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	job := models.EmailJob{
		ID:          uuid.NewString(),
		Template:    models.EmailTemplateContactRequest,
		Recipient:   profile.Email,
		FirstName:   profile.FirstName(),
		ProfileURL:  s.profileURL(profile.ID),
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
	}
	if err := s.queueEmail(job); err != nil {
		s.logger.Error("Failed to queue contact email", "error", err, "profileID", profile.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue message",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"queued": true})
}

// handleListActiveAds serves the active sponsored content interleaved by the
// display layer at its fixed cadence.
func (s *Server) handleListActiveAds(c *fiber.Ctx) error {
	ads, err := s.ads.ListActive(c.Context())
	if err != nil {
		s.logger.Error("Failed to fetch advertisements", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch advertisements",
		})
	}
	return c.JSON(fiber.Map{"advertisements": ads})
}

func (s *Server) profileURL(id string) string {
	return fmt.Sprintf("%s/profile/%s", strings.TrimSuffix(s.cfg.Server.PublicBaseURL, "/"), id)
}

func (s *Server) queueEmail(job models.EmailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal email job: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: s.cfg.Kafka.Topic,
		Value: sarama.StringEncoder(payload),
	}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to queue email job: %w", err)
	}
	return nil
}
