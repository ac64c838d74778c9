package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	userRoleRepo user.UserRoleRepository,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	profileHandler ProfileHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peoplehub-hrm"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.GetToday)
				r.Get("/my", attendanceHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin(userRoleRepo))
					r.Get("/", attendanceHandler.ListAll)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/types", leaveHandler.ListTypes)
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin(userRoleRepo))
					r.Get("/", leaveHandler.ListAll)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/profiles", func(r chi.Router) {
				r.Get("/my", profileHandler.GetMine)
				r.Put("/my", profileHandler.UpdateMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin(userRoleRepo))
					r.Get("/", profileHandler.List)
					r.Put("/{id}", profileHandler.Update)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.GetMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin(userRoleRepo))
					r.Get("/", payrollHandler.List)
					r.Put("/{id}", payrollHandler.Update)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/my", dashboardHandler.EmployeeStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin(userRoleRepo))
					r.Get("/stats", dashboardHandler.AdminStats)
				})
			})
		})
	})

	return r
}
