package bootstrap

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	authfeature "github.com/fcunirea/clubsite/internal/app/features/auth"
	contactfeature "github.com/fcunirea/clubsite/internal/app/features/contact"
	dashboardfeature "github.com/fcunirea/clubsite/internal/app/features/dashboard"
	galleryfeature "github.com/fcunirea/clubsite/internal/app/features/gallery"
	healthfeature "github.com/fcunirea/clubsite/internal/app/features/health"
	matchesfeature "github.com/fcunirea/clubsite/internal/app/features/matches"
	newsfeature "github.com/fcunirea/clubsite/internal/app/features/news"
	playersfeature "github.com/fcunirea/clubsite/internal/app/features/players"
	sponsorsfeature "github.com/fcunirea/clubsite/internal/app/features/sponsors"
	"github.com/fcunirea/clubsite/internal/app/store/sessions"
	"github.com/fcunirea/clubsite/internal/app/store/users"
	"github.com/fcunirea/clubsite/internal/app/system/auth"
	"github.com/fcunirea/clubsite/internal/app/system/compress"
	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
	"github.com/fcunirea/clubsite/internal/app/system/metrics"
	"github.com/fcunirea/clubsite/internal/app/system/upload"
)

// BuildHandler constructs the root HTTP handler for the clubsite server.
//
// It wires the session manager, upload saver, and feature routers on top
// of the shared middleware chain:
//  1. Global middleware (timeout, CORS, metrics, compression, session load)
//  2. Static file serving for uploaded media
//  3. /api feature mounts
//  4. /metrics scrape endpoint
func BuildHandler(cfg Config, deps *Deps, logger *zap.Logger) (http.Handler, error) {
	userStore := users.New(deps.MongoDatabase)
	sessionStore := sessions.New(deps.MongoDatabase)
	sessionMgr := auth.NewSessionManager(sessionStore, userStore, cfg.SessionName, cfg.SessionMaxAge, cfg.IsProd(), logger)

	uploads, err := upload.NewSaver(cfg.UploadDir, cfg.UploadURLPrefix)
	if err != nil {
		return nil, err
	}

	mets := metrics.New()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS must run early so preflight requests never hit auth.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(mets.Middleware)
	r.Use(compress.Middleware())

	// Loads the session user into context; public routes simply see no user.
	r.Use(sessionMgr.LoadSessionUser)

	// Uploaded media, served under the public URL prefix.
	fileServer := http.StripPrefix(cfg.UploadURLPrefix, http.FileServer(http.Dir(cfg.UploadDir)))
	r.Handle(cfg.UploadURLPrefix+"/*", fileServer)

	r.Route("/api", func(api chi.Router) {
		authHandler := authfeature.NewHandler(userStore, sessionMgr, logger)
		api.Mount("/auth", authfeature.Routes(authHandler, sessionMgr))

		playersHandler := playersfeature.NewHandler(playersfeature.NewStore(deps.MongoDatabase), uploads, logger)
		api.Mount("/players", playersfeature.Routes(playersHandler, sessionMgr))

		matchesHandler := matchesfeature.NewHandler(matchesfeature.NewStore(deps.MongoDatabase), logger)
		api.Mount("/matches", matchesfeature.Routes(matchesHandler, sessionMgr))

		newsHandler := newsfeature.NewHandler(newsfeature.NewStore(deps.MongoDatabase), uploads, logger)
		api.Mount("/news", newsfeature.Routes(newsHandler, sessionMgr))

		galleryHandler := galleryfeature.NewHandler(galleryfeature.NewStore(deps.MongoDatabase), uploads, logger)
		api.Mount("/gallery", galleryfeature.Routes(galleryHandler, sessionMgr))

		sponsorsHandler := sponsorsfeature.NewHandler(sponsorsfeature.NewStore(deps.MongoDatabase), uploads, logger)
		api.Mount("/sponsors", sponsorsfeature.Routes(sponsorsHandler, sessionMgr))

		contactHandler := contactfeature.NewHandler(contactfeature.NewStore(deps.MongoDatabase), deps.Mailer, cfg.ContactEmail, logger)
		api.Mount("/contact", contactfeature.Routes(contactHandler, sessionMgr))

		dashboardHandler := dashboardfeature.NewHandler(dashboardfeature.NewStore(deps.MongoDatabase), logger)
		api.Mount("/admin", dashboardfeature.Routes(dashboardHandler, sessionMgr))

		healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
		api.Mount("/health", healthfeature.Routes(healthHandler))
	})

	r.Get("/metrics", mets.Handler().ServeHTTP)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.Error(w, "Route not found", jsonutil.CodeNotFound, http.StatusNotFound)
	})

	return r, nil
}
