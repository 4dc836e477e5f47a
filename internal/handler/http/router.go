package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/cmlabs-hris/ems-backend-go/internal/config"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

func NewRouter(
	cfg *config.Config,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	taskHandler TaskHandler,
	leaveHandler LeaveHandler,
	announcementHandler AnnouncementHandler,
	issueHandler IssueHandler,
	workHoursHandler WorkHoursHandler,
	emailHandler EmailHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.Message(w, "Employee Management System API")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/validate", authHandler.Validate)
			r.Get("/users", authHandler.ListUsers)
			r.Post("/register", authHandler.Register)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Mark)
			r.Delete("/{id}", attendanceHandler.Delete)
			r.Get("/employee/{id}", attendanceHandler.ListByEmployee)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Get("/{id}", taskHandler.Get)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
			r.Get("/employee/{id}", taskHandler.ListByEmployee)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/", leaveHandler.List)
			r.Post("/", leaveHandler.Create)
			r.Get("/{id}", leaveHandler.Get)
			r.Put("/{id}", leaveHandler.Review)
			r.Delete("/{id}", leaveHandler.Delete)
			r.Get("/employee/{id}", leaveHandler.ListByEmployee)
		})

		r.Route("/announcements", func(r chi.Router) {
			r.Get("/", announcementHandler.List)
			r.Post("/", announcementHandler.Create)
			r.Delete("/{id}", announcementHandler.Delete)
		})

		r.Route("/issues", func(r chi.Router) {
			r.Get("/", issueHandler.List)
			r.Post("/", issueHandler.Create)
			r.Put("/{id}", issueHandler.Update)
			r.Delete("/{id}", issueHandler.Delete)
			r.Get("/employee/{id}", issueHandler.ListByEmployee)
			r.Get("/department/{dept}", issueHandler.ListByDepartment)
		})

		r.Route("/workhours", func(r chi.Router) {
			r.Get("/", workHoursHandler.List)
			r.Post("/checkin", workHoursHandler.CheckIn)
			r.Post("/checkout", workHoursHandler.CheckOut)
			r.Get("/employee/{id}", workHoursHandler.ListByEmployee)
			r.Get("/weekly/{employeeId}", workHoursHandler.WeeklySummary)
		})

		r.Get("/test-email", emailHandler.SendTest)
	})

	return r
}
