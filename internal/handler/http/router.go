package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nexhr/hrms-backend-go/internal/config"
	"github.com/nexhr/hrms-backend-go/internal/domain/user"
	"github.com/nexhr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/nexhr/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	holidayHandler HolidayHandler,
	leaveHandler LeaveHandler,
	salaryHandler SalaryHandler,
	employeeHandler EmployeeHandler,
	bellHandler BellHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nexhr-hrms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceMark)).
					Post("/mark", attendanceHandler.Mark)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
					r.Get("/today", attendanceHandler.Today)
					r.Get("/my", attendanceHandler.MyMonth)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/manage", attendanceHandler.EmployeeMonth)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
					r.Patch("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceSettings))
					r.Get("/", attendanceHandler.GetSettings)
					r.Post("/", attendanceHandler.SaveSettings)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionHolidayView)).
					Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionHolidayManage))
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
					Post("/", leaveHandler.Request)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).
					Get("/my", leaveHandler.MyLeaves)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/pending", leaveHandler.Pending)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).
					Patch("/{id}/status", leaveHandler.UpdateStatus)
			})

			r.Route("/salary", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSalaryViewOwn))
					r.Get("/my", salaryHandler.My)
					r.Get("/my/history", salaryHandler.History)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSalaryManage))
					r.Get("/manage", salaryHandler.List)
					r.Post("/manage", salaryHandler.Compute)
					r.Patch("/{id}/pay", salaryHandler.MarkPaid)
					r.Delete("/{id}", salaryHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/bell", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionBellView))
				r.Get("/", bellHandler.My)
				r.Patch("/{id}/read", bellHandler.MarkRead)
			})
		})
	})
	return r
}
