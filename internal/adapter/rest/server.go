package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/adapter/rest/middleware"
	"github.com/armazena/listing-service/internal/platform/logger"
	"github.com/armazena/listing-service/internal/platform/metrics"
)

type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(port string, handler *Handler, m *metrics.Manager, jwtSecret string, log *logger.Logger) *Server {
	router := chi.NewRouter()

	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RequestMetrics(m))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Authenticate(jwtSecret, log))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		// Discovery surface is public; inquiries are too, matching the
		// marketplace flow where buyers browse without an account.
		r.Get("/listings", handler.SearchListings)
		r.Get("/listings/{id}", handler.GetListing)
		r.Get("/filters/options", handler.FilterOptions)
		r.Post("/listings/{id}/contact", handler.SendContactRequest)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/listings", handler.CreateListing)
			r.Post("/listings/{id}/images", handler.AttachImage)
			r.Delete("/listings/{id}", handler.DeactivateListing)

			r.Get("/favorites", handler.ListFavorites)
			r.Post("/favorites/{listingID}", handler.AddFavorite)
			r.Delete("/favorites/{listingID}", handler.RemoveFavorite)

			r.Get("/me", handler.Me)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: log,
	}
}

// Router exposes the configured handler chain, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
