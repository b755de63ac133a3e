package app

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httppayment "github.com/gamehub/payments/internal/adapter/inbound/http/payment"
	command "github.com/gamehub/payments/internal/app/command/payment"
	query "github.com/gamehub/payments/internal/app/query/payment"
	infracache "github.com/gamehub/payments/internal/infra/cache"
	"github.com/gamehub/payments/internal/infra/eventbus"
	"github.com/gamehub/payments/internal/infra/gateway"
	"github.com/gamehub/payments/internal/infra/messaging"
	"github.com/gamehub/payments/internal/infra/persistence"
	"github.com/gamehub/payments/internal/shared/cache"
	"github.com/gamehub/payments/internal/shared/config"
	"github.com/gamehub/payments/internal/shared/database"
	"github.com/gamehub/payments/internal/shared/logger"
	"github.com/gamehub/payments/internal/shared/metrics"
	"github.com/gamehub/payments/internal/shared/middleware"
	"github.com/gamehub/payments/internal/worker"
)

// App owns the wired components and their shutdown order.
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Router     *gin.Engine
	Reconciler *worker.Reconciler

	db        *gorm.DB
	redis     redis.UniversalClient
	publisher messaging.Publisher
}

// New builds the full application graph from configuration.
func New(cfg *config.Config) (*App, error) {
	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	publisher, err := messaging.NewKafkaPublisher(cfg.Kafka, log)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}

	m := metrics.New("payments")

	repo, err := persistence.NewPaymentRepository(db)
	if err != nil {
		return nil, err
	}
	statusCache := infracache.NewStatusCache(redisClient, cfg.Redis.StatusTTL, m, log)

	bus := eventbus.New(log)
	bus.Register(eventbus.NewMetricsRecorder(m))
	bus.Register(eventbus.NewCacheInvalidator(statusCache))

	gw := gateway.NewSimulated(cfg.Gateway.SuccessRate, m, log)

	createHandler := command.NewCreatePaymentHandler(repo, bus, log)
	processHandler := command.NewProcessPaymentHandler(repo, gw, bus, publisher, m, log)
	refundHandler := command.NewRefundPaymentHandler(repo, bus, log)
	cancelHandler := command.NewCancelPaymentHandler(repo, bus, log)
	getHandler := query.NewGetPaymentHandler(repo)
	statusHandler := query.NewGetStatusHandler(repo, statusCache)
	listHandler := query.NewListPaymentsHandler(repo)

	httpHandler := httppayment.NewHandler(
		createHandler, processHandler, refundHandler, cancelHandler,
		getHandler, statusHandler, listHandler,
	)

	router := newRouter(log, m, httpHandler)

	var rec *worker.Reconciler
	if cfg.Reconciler.Enabled {
		rec = worker.NewReconciler(repo, bus, cfg.Reconciler, m, log)
	}

	return &App{
		Config:     cfg,
		Logger:     log,
		Router:     router,
		Reconciler: rec,
		db:         db,
		redis:      redisClient,
		publisher:  publisher,
	}, nil
}

func newRouter(log *zap.Logger, m *metrics.Metrics, h *httppayment.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Metrics(m))
	router.Use(cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)
	return router
}

// Close releases external connections in reverse wiring order.
func (a *App) Close() {
	if err := a.publisher.Close(); err != nil {
		a.Logger.Warn("close kafka publisher", zap.Error(err))
	}
	if err := cache.Close(a.redis); err != nil {
		a.Logger.Warn("close redis client", zap.Error(err))
	}
	if err := database.Close(a.db); err != nil {
		a.Logger.Warn("close database", zap.Error(err))
	}
	_ = a.Logger.Sync()
}
