package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymquest/internal/capability"
	"github.com/2beens/gymquest/internal/catalog"
	"github.com/2beens/gymquest/internal/clock"
	"github.com/2beens/gymquest/internal/config"
	"github.com/2beens/gymquest/internal/controller"
	"github.com/2beens/gymquest/internal/db"
	"github.com/2beens/gymquest/internal/game"
	"github.com/2beens/gymquest/internal/history"
	"github.com/2beens/gymquest/internal/kvstore"
	"github.com/2beens/gymquest/internal/middleware"
	"github.com/2beens/gymquest/internal/notify"
	"github.com/2beens/gymquest/internal/progress"
	"github.com/2beens/gymquest/internal/quests"
	"github.com/2beens/gymquest/internal/telemetry/metrics"
	"github.com/2beens/gymquest/internal/telemetry/tracing"
	"github.com/2beens/gymquest/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serviceName     = "gymquest"
	historyDBName   = "gymquest_history"
	rateLimiterName = "gymquest-api"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	engine *game.Engine

	redisClient *redis.Client
	dbPool      *pgxpool.Pool

	loopCancel context.CancelFunc
	loopDone   chan struct{}

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var rdb *redis.Client
	if cfg.StoreBackend == config.StoreRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	var (
		collectors  []prometheus.Collector
		dbPool      *pgxpool.Pool
		historyRepo *history.Repo
	)
	if cfg.HistoryEnabled {
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     cfg.PostgresPassword,
			MaxConns:       cfg.PostgresMaxConns,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		historyRepo = history.NewRepo(dbPool)
		if err := historyRepo.Migrate(ctx); err != nil {
			log.Errorf("history migrate: %s", err)
		}
		collectors = append(collectors, db.NewPoolCollector(dbPool, historyDBName))
	}

	promRegistry := metrics.SetupPrometheus(collectors...)
	metricsManager := metrics.NewManager(serviceName, "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var store kvstore.Store
	if rdb != nil {
		store = kvstore.NewRedisStore(rdb, cfg.RedisKeyPrefix)
	} else {
		log.Warnln("progress is kept in memory and lost on restart")
		store = kvstore.NewMemoryStore(cfg.MemoryStoreSizeMB * 1024 * 1024)
	}

	planCatalog := catalog.Default()
	if cfg.CatalogPath != "" {
		if planCatalog, err = catalog.Load(cfg.CatalogPath); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	engine := newEngine(cfg, store, planCatalog, historyRepo, metricsManager)
	engine.Load(ctx)

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         cfg,
		engine:         engine,
		redisClient:    rdb,
		dbPool:         dbPool,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func newEngine(
	cfg *config.Config,
	store kvstore.Store,
	planCatalog *catalog.Catalog,
	historyRepo *history.Repo,
	metricsManager *metrics.Manager,
) *game.Engine {
	feed := notify.NewFeed(cfg.FeedSize)

	progressOpts := []progress.Option{
		progress.WithMetrics(metricsManager),
		progress.WithGenerator(quests.NewGenerator(nil, quests.WithCounts(cfg.DailyQuests, cfg.WeeklyQuests))),
	}
	if historyRepo != nil {
		progressOpts = append(progressOpts, progress.WithHistory(historyRepo))
	}
	progressService := progress.NewService(
		progress.NewRepo(store, metricsManager),
		clock.Real{},
		notify.Multi{notify.LogSink{}, feed},
		progressOpts...,
	)

	// camera-assisted sessions wait for an explicit grant
	camera := capability.NewToggle(!cfg.CameraAssisted)
	ctrlOpts := []controller.Option{
		controller.WithGetReadySeconds(cfg.GetReadySeconds),
		controller.WithCountdownSeconds(cfg.CountdownSeconds),
		controller.WithMetrics(metricsManager),
	}
	if cfg.CameraAssisted {
		ctrlOpts = append(ctrlOpts, controller.WithCapability(camera))
	}
	ctrl := controller.New(planCatalog, progressService, ctrlOpts...)

	engineParams := game.Params{
		Controller:     ctrl,
		Loop:           controller.NewLoop(ctrl, cfg.TickInterval),
		Progress:       progressService,
		Catalog:        planCatalog,
		Feed:           feed,
		Camera:         camera,
		CameraAssisted: cfg.CameraAssisted,
	}
	if historyRepo != nil {
		engineParams.History = historyRepo
	}
	return game.NewEngine(engineParams)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymquest-router"))

	NewHandler(s.engine).SetupRoutes(r)

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteText(w, s.versionInfo, http.StatusOK)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	if s.redisClient != nil {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			rateLimiterName,
			s.config.RateLimitAllowedPerMin,
			s.metricsManager,
		))
	}
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	loopCtx, loopCancel := context.WithCancel(ctx)
	s.loopCancel = loopCancel
	s.loopDone = make(chan struct{})
	go func() {
		defer close(s.loopDone)
		s.engine.Run(loopCtx)
	}()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.InstrumentMetricHandler(
			s.promRegistry,
			promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		),
		"metrics",
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	// stop the event loop only after in-flight requests are done with it
	if s.loopCancel != nil {
		s.loopCancel()
		<-s.loopDone
		log.Debugln("event loop stopped")
	}

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

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
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
