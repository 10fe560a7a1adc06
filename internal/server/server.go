package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/spst-logistics/spst-backend/internal/config"
	"github.com/spst-logistics/spst-backend/internal/handler"
	"github.com/spst-logistics/spst-backend/internal/identity"
	appmw "github.com/spst-logistics/spst-backend/internal/middleware"
	"github.com/spst-logistics/spst-backend/internal/repository"
	"github.com/spst-logistics/spst-backend/internal/service"
	"github.com/spst-logistics/spst-backend/internal/storage"
	"github.com/spst-logistics/spst-backend/internal/store"
)

// Deps carries the externally-constructed clients. Everything downstream
// (repositories, services, handlers) is wired here; nothing is a hidden
// module-level singleton.
type Deps struct {
	Cfg      *config.Config
	Verifier identity.Verifier
	Issuer   handler.SessionIssuer
	Store    *store.Client
	Mailer   service.Mailer
	Places   *service.PlacesService
	Uploader *storage.Uploader
}

type Server struct {
	e *echo.Echo
}

func New(d Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc:  allowOrigin(d.Cfg.AllowedOrigins),
	}))

	resolver := identity.NewResolver(d.Verifier)
	gate := appmw.NewSessionGate(resolver, d.Cfg.LoginPath, "/dashboard")

	shipmentRepo := repository.NewShipmentRepository(d.Store, d.Cfg.ShipmentsTable, d.Cfg.ParcelsTable, d.Cfg.PackingLinesTable)
	shipmentSvc := service.NewShipmentService(shipmentRepo)
	notifySvc := service.NewNotificationService(d.Mailer, d.Cfg.EmailFrom, d.Cfg.EmailReplyTo, shipmentSvc)
	shipmentHandler := handler.NewShipmentHandler(shipmentSvc, notifySvc, resolver)

	quotationRepo := repository.NewQuotationRepository(d.Store, d.Cfg.QuotationsTable, d.Cfg.QuoteParcelsTable)
	quotationHandler := handler.NewQuotationHandler(service.NewQuotationService(quotationRepo), resolver)

	profileRepo := repository.NewProfileRepository(d.Store, d.Cfg.ProfilesTable)
	profileHandler := handler.NewProfileHandler(service.NewProfileService(profileRepo), resolver)

	sessionHandler := handler.NewSessionHandler(d.Issuer, d.Cfg.CookieSecure, d.Cfg.LoginPath)
	placesHandler := handler.NewPlacesHandler(d.Places)
	documentHandler := handler.NewDocumentHandler(d.Uploader)
	complianceHandler := handler.NewComplianceHandler()

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.POST("/session", sessionHandler.Create)
	e.GET("/logout", sessionHandler.Logout)

	e.POST("/shipments", shipmentHandler.Create)
	e.GET("/shipments", shipmentHandler.List)
	e.GET("/shipments/:id", shipmentHandler.Get)
	e.GET("/shipments/:id/parcels", shipmentHandler.Parcels)
	e.GET("/shipments/:id/metrics", shipmentHandler.Metrics)
	e.POST("/shipments/:id/notify", shipmentHandler.Notify)
	e.POST("/shipments/:id/tracking", shipmentHandler.SetTracking)

	e.POST("/quotations", quotationHandler.Create)
	e.GET("/quotations", quotationHandler.List)
	e.GET("/quotations/:id", quotationHandler.Get)

	e.GET("/profile", profileHandler.Get)
	e.POST("/profile", profileHandler.Save)

	e.GET("/places/autocomplete", placesHandler.Autocomplete)
	e.GET("/places/details", placesHandler.Details)
	e.GET("/places/reverse", placesHandler.Reverse)

	e.POST("/documents", documentHandler.Upload)

	e.GET("/compliance/check", complianceHandler.Check)

	// Session-gated entry points: the gate runs before any handler and
	// bounces anonymous callers to login with a return hint.
	e.GET("/dashboard", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"email": c.Get(appmw.ContextEmailKey),
		})
	}, gate.RequireSession)
	e.GET(d.Cfg.LoginPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"login": "required"})
	}, gate.RedirectIfAuthenticated)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// allowOrigin accepts localhost during development plus the configured
// allow-list (exact origin match).
func allowOrigin(allowed []string) func(string) (bool, error) {
	return func(origin string) (bool, error) {
		low := strings.ToLower(origin)
		if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
			strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
			return true, nil
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false, nil
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return false, nil
		}
		for _, a := range allowed {
			if strings.EqualFold(strings.TrimRight(a, "/"), strings.TrimRight(origin, "/")) {
				return true, nil
			}
		}
		return false, nil
	}
}
