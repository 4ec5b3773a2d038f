package api

import (
	"context"
	"log/slog"
	"strings"

	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/cofounderbase/cofounderbase/internal/config"
	"github.com/cofounderbase/cofounderbase/internal/directory"
	"github.com/cofounderbase/cofounderbase/internal/models"
	"github.com/cofounderbase/cofounderbase/internal/storage"
	"github.com/cofounderbase/cofounderbase/internal/store"
	"github.com/cofounderbase/cofounderbase/pkg/database"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	db        *database.Clients
	producer  sarama.SyncProducer
	profiles  *store.ProfileStore
	ads       *store.AdStore
	settings  *store.SettingStore
	directory *directory.Directory
	storage   storage.Storage
	logger    *slog.Logger
}

func NewServer(cfg *config.Config, db *database.Clients, producer sarama.SyncProducer, st storage.Storage) *Server {
	app := fiber.New()

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status}\n",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Server.MaxRequests,
		Expiration: cfg.Server.RequestTimeout,
	}))
	app.Use(cache.New(cache.Config{
		Expiration:   cfg.Server.CacheExpiration,
		CacheControl: true,
		Next: func(c *fiber.Ctx) bool {
			// Only front public GETs; admin reads must always be fresh.
			return c.Method() != fiber.MethodGet || strings.HasPrefix(c.Path(), "/api/admin")
		},
	}))

	profiles := store.NewProfileStore(db.DB)
	server := &Server{
		app:      app,
		cfg:      cfg,
		db:       db,
		producer: producer,
		profiles: profiles,
		ads:      store.NewAdStore(db.DB),
		settings: store.NewSettingStore(db.DB),
		directory: directory.New(func(ctx context.Context) ([]models.Profile, error) {
			return profiles.ListApproved(ctx, cfg.Directory.PageSize)
		}, cfg.Directory.CacheTTL),
		storage: st,
		logger:  slog.Default(),
	}

	server.setupRoutes()

	// Locally stored headshots are served straight from disk.
	if local, ok := st.(*storage.LocalStorage); ok {
		app.Static("/"+storage.Namespace, local.Dir())
	}

	return server
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Public routes
	api.Post("/admin/login", s.handleAdminLogin)
	api.Get("/profiles", s.handleListProfiles)
	api.Get("/profiles/:id", s.handleGetProfile)
	api.Post("/profiles", s.handleSubmitProfile)
	api.Post("/profiles/:id/contact", s.handleContactProfile)
	api.Get("/advertisements", s.handleListActiveAds)
	api.Post("/uploads/headshot", s.handleUploadHeadshot)

	// Protected admin routes
	admin := api.Group("/admin")
	admin.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(s.cfg.JWT.Secret),
	}))
	admin.Get("/profiles", s.handleAdminListProfiles)
	admin.Post("/profiles/:id/approve", s.handleApproveProfile)
	admin.Post("/profiles/:id/feature", s.handleFeatureProfile)
	admin.Put("/profiles/:id", s.handleEditProfile)
	admin.Delete("/profiles/:id", s.handleRejectProfile)
	admin.Get("/advertisements", s.handleAdminListAds)
	admin.Post("/advertisements", s.handleCreateAd)
	admin.Put("/advertisements/:id", s.handleUpdateAd)
	admin.Post("/advertisements/:id/toggle", s.handleToggleAd)
	admin.Delete("/advertisements/:id", s.handleDeleteAd)
	admin.Get("/settings/auto-approve", s.handleGetAutoApprove)
	admin.Put("/settings/auto-approve", s.handleSetAutoApprove)
}

func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Server.Port)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
