// Package router wires the HTTP handlers into a chi router.
package router

import (
	// Go Internal Packages
	"net/http"
	"time"

	// Local Packages
	handlers "tap-terminal/handlers"
	attachments "tap-terminal/services/attachments"

	// External Packages
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Lookup       *handlers.LookupHandler
	Sessions     *handlers.SessionsHandler
	Transactions *handlers.TransactionsHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func SetupRoutes(h Handlers, requestTimeout time.Duration, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Get("/settings", h.Auth.GetSettings)
		r.Put("/settings", h.Auth.UpdateSettings)

		r.Get("/dashboard", h.Lookup.Dashboard)
		r.Get("/orders", h.Lookup.SearchOrders)
		r.Get("/orders/recent", h.Lookup.RecentOrders)
		r.Get("/catalog", h.Lookup.Catalog)
		r.Post("/scans", h.Lookup.Scan)

		r.Post("/sessions", h.Sessions.Start)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.Sessions.Get)
			r.Post("/keypad", h.Sessions.Keypad)

			r.Put("/order", h.Sessions.AttachOrder)
			r.Delete("/order", h.Sessions.Detach(attachments.KindOrder))
			r.Put("/catalog", h.Sessions.AttachCatalog)
			r.Delete("/catalog", h.Sessions.Detach(attachments.KindCatalog))
			r.Put("/memo", h.Sessions.SetMemo)
			r.Delete("/memo", h.Sessions.Detach(attachments.KindMemo))
			r.Put("/scan", h.Sessions.AttachScan)
			r.Delete("/scan", h.Sessions.Detach(attachments.KindScan))

			r.Post("/amount", h.Sessions.ConfirmAmount)
			r.Post("/back", h.Sessions.Back)
			r.Post("/method", h.Sessions.SelectMethod)
			r.Post("/tender", h.Sessions.Tender)
			r.Get("/tips", h.Sessions.TipOptions)
			r.Post("/tip", h.Sessions.Tip)
			r.Post("/reset", h.Sessions.Reset)
			r.Post("/autopay", h.Sessions.Autopay)
			r.Get("/receipt", h.Sessions.Receipt)
		})

		r.Get("/transactions", h.Transactions.List)
		r.Get("/transactions/days", h.Transactions.Days)
		r.Route("/transactions/{id}", func(r chi.Router) {
			r.Get("/", h.Transactions.Get)
			r.Get("/receipt", h.Transactions.Receipt)
			r.Post("/receipt/share", h.Transactions.ShareReceipt)
			r.Post("/refund", h.Transactions.Refund)
		})
	})

	return r
}

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
