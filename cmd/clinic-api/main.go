// @title           Smart Clinic API
// @version         1.0
// @description     Doctors, patients, appointments and prescriptions of a clinic.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/smartclinic/clinic-api/internal/api"
	"github.com/smartclinic/clinic-api/internal/api/handler"
	"github.com/smartclinic/clinic-api/internal/api/metrics"
	"github.com/smartclinic/clinic-api/internal/api/middleware"
	"github.com/smartclinic/clinic-api/internal/core/service"
	mongostore "github.com/smartclinic/clinic-api/internal/infrastructure/db/mongo"
	pgstore "github.com/smartclinic/clinic-api/internal/infrastructure/db/postgres"
	redisstore "github.com/smartclinic/clinic-api/internal/infrastructure/db/redis"
	"github.com/smartclinic/clinic-api/internal/infrastructure/queue"
	"github.com/smartclinic/clinic-api/internal/pkg/config"
	"github.com/smartclinic/clinic-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "clinic-api",
		Short:         "Smart Clinic scheduling API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		l := logger.Init(logger.Options{Service: "clinic-api"})
		l.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "clinic-api",
	})
	loc := cfg.Location()

	// --- PostgreSQL ---
	pool, err := pgstore.Connect(ctx, pgstore.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
		MinConns: cfg.Postgres.MinConns,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// --- MongoDB ---
	mongoClient, mongoDB, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	prescriptionRepo := mongostore.NewPrescriptionRepository(mongoDB)
	auditRepo := mongostore.NewAuditRepository(mongoDB)
	if err := mongostore.EnsureIndexes(ctx, prescriptionRepo, auditRepo); err != nil {
		return err
	}
	log.Info().Msg("connected to mongodb")

	// --- Redis ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Msg("connected to redis")

	// --- Repositories ---
	admins := pgstore.NewAdminRepository(pool)
	doctors := pgstore.NewDoctorRepository(pool)
	patients := pgstore.NewPatientRepository(pool)
	appointments := pgstore.NewAppointmentRepository(pool)
	slotLock := redisstore.NewSlotLock(rdb, cfg.Redis.LockTTL, logger.Component("slot_lock"))

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers,
		service.NewAuditService(auditRepo, logger.Component("audit")),
		logger.Component("dispatcher"))
	dispatcher.OnDrop(metrics.AuditEventsDroppedTotal.Inc)
	metrics.RegisterAuditQueueDepth(dispatcher.Depth)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)

	// --- Authorization ---
	codec, err := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		stopWorkers()
		return err
	}
	oracle := service.NewIdentityOracle(admins, doctors, patients)
	gate := service.NewAuthorizationGate(codec, oracle, logger.Component("authorization"),
		service.WithStrictRoles(cfg.StrictRoles))

	// --- Services ---
	svcLog := logger.Component("service")
	e := api.NewRouter(api.Dependencies{
		Gate:          gate,
		Admins:        service.NewAuthService(admins, codec, svcLog),
		Doctors:       service.NewDoctorService(doctors, appointments, codec, dispatcher, loc, svcLog),
		Patients:      service.NewPatientService(patients, doctors, appointments, codec, svcLog),
		Appointments:  service.NewAppointmentService(appointments, doctors, patients, slotLock, dispatcher, loc, svcLog),
		Prescriptions: service.NewPrescriptionService(prescriptionRepo, appointments, doctors, patients, svcLog),
		Checks: map[string]handler.Check{
			"postgres": handler.PostgresCheck(pool),
			"mongodb":  handler.MongoCheck(mongoDB),
			"redis":    handler.RedisCheck(rdb),
		},
		LoginLimiter: middleware.NewRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst),
		Location:     loc,
		Log:          logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("tz", loc.String()).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("server stopped")
	return nil
}
