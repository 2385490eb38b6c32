package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dstanisic/liftcoach/internal/auth"
	"github.com/dstanisic/liftcoach/internal/catalog"
	"github.com/dstanisic/liftcoach/internal/config"
	"github.com/dstanisic/liftcoach/internal/db"
	"github.com/dstanisic/liftcoach/internal/middleware"
	"github.com/dstanisic/liftcoach/internal/misc"
	"github.com/dstanisic/liftcoach/internal/progression"
	"github.com/dstanisic/liftcoach/internal/suggest"
	"github.com/dstanisic/liftcoach/internal/telemetry/metrics"
	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"
	"github.com/dstanisic/liftcoach/internal/volume"
	"github.com/dstanisic/liftcoach/internal/workout"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftcoach-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	catalogRepo := catalog.NewRepo(s.dbPool)
	muscleGroupResolver := catalog.NewResolver(catalogRepo, s.config.CatalogCacheSizeBytes)
	catalogHandler := catalog.NewHandler(catalogRepo, muscleGroupResolver)
	r.HandleFunc("/exercises", catalogHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{exercise}", catalogHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{exercise}", catalogHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{exercise}", catalogHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	rulesRepo := progression.NewRulesRepo(s.dbPool)
	stateRepo := progression.NewStateRepo(s.dbPool)
	advisor := progression.NewAdvisor(rulesRepo, stateRepo)
	progressionHandler := progression.NewHandler(rulesRepo, stateRepo, advisor, s.metricsManager)
	r.HandleFunc("/progression/rules", progressionHandler.HandleCreateRule).Methods("POST", "OPTIONS").Name("new-rule")
	r.HandleFunc("/progression/rules/{exercise}", progressionHandler.HandleGetRule).Methods("GET", "OPTIONS").Name("get-rule")
	r.HandleFunc("/progression/rules/{exercise}", progressionHandler.HandleUpdateRule).Methods("PUT", "OPTIONS").Name("update-rule")
	r.HandleFunc("/progression/rules/{exercise}", progressionHandler.HandleDeleteRule).Methods("DELETE", "OPTIONS").Name("delete-rule")
	r.HandleFunc("/progression/suggest", progressionHandler.HandleSuggest).Methods("POST", "OPTIONS").Name("suggest-weight")
	r.HandleFunc("/progression/record", progressionHandler.HandleRecord).Methods("POST", "OPTIONS").Name("record-progression")
	r.HandleFunc("/progression/user/{user}/exercise/{exercise}", progressionHandler.HandleGetProgression).
		Methods("GET", "OPTIONS").Name("get-progression")

	volumeRepo := volume.NewRepo(s.dbPool)
	volumeService := volume.NewService(volumeRepo, muscleGroupResolver)
	balanceAnalyzer := volume.NewAnalyzer(volumeRepo, s.config.BalanceThreshold)
	volumeHandler := volume.NewHandler(volumeService, balanceAnalyzer, s.metricsManager)
	r.HandleFunc("/volume", volumeHandler.HandleUpdate).Methods("POST", "OPTIONS").Name("update-volume")
	r.HandleFunc("/volume/user/{user}/week/{weekStart}", volumeHandler.HandleGetWeek).
		Methods("GET", "OPTIONS").Name("get-weekly-volume")
	r.HandleFunc("/volume/balance/user/{user}", volumeHandler.HandleBalance).
		Methods("GET", "OPTIONS").Name("check-balance")

	workoutRepo := workout.NewRepo(s.dbPool)
	workoutHandler := workout.NewHandler(workoutRepo, stateRepo, volumeService)
	r.HandleFunc("/workout", workoutHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout-entry")
	r.HandleFunc("/workout/user/{user}", workoutHandler.HandleRecent).Methods("GET", "OPTIONS").Name("recent-workout-entries")
	r.HandleFunc("/workout/{id}", workoutHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout-entry")

	workoutRanker := suggest.NewRanker(workoutRepo, volumeService, muscleGroupResolver, suggest.Config{
		HighVolumeRatio:   s.config.RankerHighVolumeRatio,
		MediumVolumeRatio: s.config.RankerMediumVolumeRatio,
		PairFrequencyGap:  s.config.RankerPairFrequencyGap,
	})
	suggestHandler := suggest.NewHandler(workoutRanker, s.metricsManager)
	r.HandleFunc("/suggest/workouts/user/{user}", suggestHandler.HandleSuggestedWorkouts).
		Methods("GET", "OPTIONS").Name("suggest-workouts")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
