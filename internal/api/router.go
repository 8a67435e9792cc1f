package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/smartclinic/clinic-api/docs"
	"github.com/smartclinic/clinic-api/internal/api/handler"
	"github.com/smartclinic/clinic-api/internal/api/metrics"
	"github.com/smartclinic/clinic-api/internal/api/middleware"
	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// Dependencies is everything the router needs to serve requests.
type Dependencies struct {
	Gate          ports.Authorizer
	Admins        ports.AdminService
	Doctors       ports.DoctorService
	Patients      ports.PatientService
	Appointments  ports.AppointmentService
	Prescriptions ports.PrescriptionService

	// Checks are probed by /health/ready, keyed by dependency name.
	Checks       map[string]handler.Check
	LoginLimiter *middleware.RateLimiter
	Location     *time.Location
	// Registerer receives the HTTP request metrics. Nil uses the default registry.
	Registerer prometheus.Registerer
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "clinic",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Admins)
	doctorHandler := handler.NewDoctorHandler(deps.Doctors, deps.Location)
	patientHandler := handler.NewPatientHandler(deps.Patients, deps.Location)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments, deps.Location)
	prescriptionHandler := handler.NewPrescriptionHandler(deps.Prescriptions)

	gate := deps.Gate
	authLog := deps.Log.With().Str("component", "authorization").Logger()
	admin := middleware.Authorize(gate, authLog, domain.RoleAdmin)
	doctor := middleware.Authorize(gate, authLog, domain.RoleDoctor)
	patient := middleware.Authorize(gate, authLog, domain.RolePatient)
	patientOrDoctor := middleware.Authorize(gate, authLog, domain.RolePatient, domain.RoleDoctor)
	doctorOrPatient := middleware.Authorize(gate, authLog, domain.RoleDoctor, domain.RolePatient)

	limitLogin := func(role domain.Role) echo.MiddlewareFunc {
		if deps.LoginLimiter == nil {
			return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
		}
		return middleware.RateLimit(deps.LoginLimiter, func(echo.Context) {
			metrics.LoginAttemptsTotal.WithLabelValues(role.String(), "rate_limited").Inc()
		})
	}

	v1 := e.Group("/api/v1")

	// --- Administrators ---
	v1.POST("/admin/login", authHandler.Login, limitLogin(domain.RoleAdmin))

	// --- Doctors ---
	v1.GET("/doctors", doctorHandler.List)
	v1.GET("/doctors/filter", doctorHandler.Filter)
	v1.GET("/doctors/:id/availability/:user", doctorHandler.Availability, middleware.AuthorizeParam(gate, authLog, "user"))
	v1.POST("/doctors/login", doctorHandler.Login, limitLogin(domain.RoleDoctor))
	v1.POST("/doctors", doctorHandler.Create, admin)
	v1.PUT("/doctors/:id", doctorHandler.Update, admin)
	v1.DELETE("/doctors/:id", doctorHandler.Delete, admin)

	// --- Patients ---
	v1.POST("/patients", patientHandler.Register)
	v1.POST("/patients/login", patientHandler.Login, limitLogin(domain.RolePatient))
	v1.GET("/patients/me", patientHandler.Me, patient)
	v1.GET("/patients/appointments/filter", patientHandler.FilterAppointments, patient)
	v1.GET("/patients/:id/appointments", patientHandler.Appointments, patientOrDoctor)

	// --- Appointments ---
	v1.POST("/appointments", appointmentHandler.Book, patient)
	v1.PUT("/appointments/:id", appointmentHandler.Reschedule, patient)
	v1.DELETE("/appointments/:id", appointmentHandler.Cancel, patient)
	v1.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus, doctor)
	v1.GET("/appointments", appointmentHandler.ListForDoctor, doctor)

	// --- Prescriptions ---
	v1.POST("/prescriptions", prescriptionHandler.Save, doctor)
	v1.GET("/prescriptions/:appointmentId", prescriptionHandler.GetByAppointment, doctorOrPatient)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
