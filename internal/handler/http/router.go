package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payslipHandler PayslipHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/report", attendanceHandler.RangeReport)
			r.Get("/report/monthly", attendanceHandler.MonthlyReport)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/balances/{userID}", leaveHandler.GetBalances)
			r.Post("/requests", leaveHandler.CreateRequest)
		})

		r.Route("/payslips", func(r chi.Router) {
			r.Get("/", payslipHandler.List)
			r.Put("/", payslipHandler.Upsert)
			r.Post("/generate", payslipHandler.Generate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", payslipHandler.Get)
				r.Patch("/", payslipHandler.Update)
				r.Post("/release", payslipHandler.Release)
				r.Post("/lock", payslipHandler.Lock)
			})
		})
	})

	return r
}
